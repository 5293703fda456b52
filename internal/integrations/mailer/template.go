package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Booking Confirmation</title></head>
<body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#f4f4f4;">
<table width="600" cellpadding="0" cellspacing="0" style="margin:20px auto;background-color:#ffffff;border-radius:8px;">
<tr><td style="background-color:#1f2937;padding:32px;text-align:center;">
<h1 style="color:#ffffff;margin:0;font-size:26px;">Booking Confirmed</h1>
<p style="color:#d1d5db;margin:8px 0 0 0;">Thank you for choosing {{.HotelName}}</p>
</td></tr>
<tr><td style="padding:32px;">
<p>Dear {{.GuestName}},</p>
<p>Your confirmation number is <strong>{{.Number}}</strong>.</p>
<table width="100%" cellpadding="6" cellspacing="0" style="border:1px solid #e5e7eb;">
<tr><td><strong>Room</strong></td><td style="text-align:right;">{{.RoomName}}{{if .BedType}} ({{.BedType}}){{end}}</td></tr>
<tr><td><strong>Check-in</strong></td><td style="text-align:right;">{{.CheckIn}}</td></tr>
<tr><td><strong>Check-out</strong></td><td style="text-align:right;">{{.CheckOut}}</td></tr>
<tr><td><strong>Nights</strong></td><td style="text-align:right;">{{.Nights}}</td></tr>
<tr><td><strong>Guests</strong></td><td style="text-align:right;">{{.Guests}}</td></tr>
<tr><td><strong>Arrival</strong></td><td style="text-align:right;">{{.ArrivalWindow}}</td></tr>
<tr><td><strong>Nightly rate</strong></td><td style="text-align:right;">{{.NightlyRate}}</td></tr>
{{if .WeekendSurcharge}}<tr><td colspan="2">Weekend surcharge of 20% applied.</td></tr>{{end}}
{{if .LongStayDiscount}}<tr><td colspan="2">Long stay discount of 10% applied. Price before discount: <s>{{.ReferencePrice}}</s></td></tr>{{end}}
<tr><td><strong>Total</strong></td><td style="text-align:right;"><strong>{{.Total}}</strong></td></tr>
</table>
{{if .SpecialRequests}}<p><strong>Special requests:</strong> {{.SpecialRequests}}</p>{{end}}
<p style="color:#6b7280;font-size:12px;">Issued {{.IssuedAt}}. This is an automated message, please do not reply.</p>
</td></tr>
</table>
</body>
</html>
`))

func newConfirmationView(hotelName string, rec domain.ConfirmationRecord) confirmationView {
	draft := rec.Draft()
	offer := draft.Offer()
	guest := draft.Guest()
	stay := rec.Stay()

	v := confirmationView{
		HotelName:        hotelName,
		Number:           rec.Number(),
		GuestName:        guest.FirstName + " " + guest.LastName,
		RoomName:         offer.Room.Name,
		BedType:          offer.Room.BedType,
		CheckIn:          stay.CheckIn.Format("Mon, 02 Jan 2006"),
		CheckOut:         stay.CheckOut.Format("Mon, 02 Jan 2006"),
		Nights:           stay.Nights(),
		Guests:           stay.Guests,
		ArrivalWindow:    string(guest.ArrivalWindow),
		SpecialRequests:  guest.SpecialRequests,
		NightlyRate:      fmt.Sprintf("$%.2f", offer.Price.NightlyRate),
		WeekendSurcharge: offer.Price.WeekendSurcharge,
		LongStayDiscount: offer.Price.LongStayDiscount,
		Total:            fmt.Sprintf("$%d", rec.TotalPrice()),
		IssuedAt:         rec.IssuedAt().UTC().Format("02 Jan 2006 15:04 MST"),
	}

	if offer.Price.ReferencePrice != nil {
		v.ReferencePrice = fmt.Sprintf("$%d", *offer.Price.ReferencePrice)
	}

	return v
}

func renderConfirmation(hotelName string, rec domain.ConfirmationRecord) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTemplate.Execute(&buf, newConfirmationView(hotelName, rec)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
