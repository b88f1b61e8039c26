package email

import (
	"fmt"
	"html/template"
	"strings"

	"roastery-admin/internal/domain"
)

// OrderEmailData is the structured input to the template builders.
type OrderEmailData struct {
	CustomerName string
	OrderNumber  string
	TrackingID   string
	TotalCents   int64
	Currency     string
}

// Message is a rendered notification ready for a mail sender.
type Message struct {
	Subject string
	HTML    string
}

var (
	shippedTmpl = template.Must(template.New("shipped").Parse(`<p>Hi {{.CustomerName}},</p>
<p>Good news! Your order <strong>{{.OrderNumber}}</strong> is on its way.</p>
{{if .TrackingID}}<p>Track your parcel with ID <strong>{{.TrackingID}}</strong>.</p>{{end}}
<p>Happy brewing,<br>The Roastery Team</p>`))

	deliveredTmpl = template.Must(template.New("delivered").Parse(`<p>Hi {{.CustomerName}},</p>
<p>Your order <strong>{{.OrderNumber}}</strong> has been delivered.</p>
<p>We hope you enjoy every cup. Let us know how it tastes!</p>
<p>Happy brewing,<br>The Roastery Team</p>`))

	cancelledTmpl = template.Must(template.New("cancelled").Parse(`<p>Hi {{.CustomerName}},</p>
<p>Your order <strong>{{.OrderNumber}}</strong> has been cancelled.</p>
<p>If you did not request this, please reply to this email and we will sort it out.</p>
<p>The Roastery Team</p>`))
)

// ShippedMessage renders the shipping notification.
func ShippedMessage(data OrderEmailData) (Message, error) {
	return render(shippedTmpl, fmt.Sprintf("Your order %s has shipped", data.OrderNumber), data)
}

// DeliveredMessage renders the delivery notification.
func DeliveredMessage(data OrderEmailData) (Message, error) {
	return render(deliveredTmpl, fmt.Sprintf("Your order %s was delivered", data.OrderNumber), data)
}

// CancelledMessage renders the cancellation notification.
func CancelledMessage(data OrderEmailData) (Message, error) {
	return render(cancelledTmpl, fmt.Sprintf("Your order %s was cancelled", data.OrderNumber), data)
}

// ForStatus maps an order status to its notification builder. The
// second return is false for statuses that do not trigger an email.
func ForStatus(status domain.OrderStatus) (func(OrderEmailData) (Message, error), bool) {
	switch status {
	case domain.StatusShipped:
		return ShippedMessage, true
	case domain.StatusDelivered:
		return DeliveredMessage, true
	case domain.StatusCancelled:
		return CancelledMessage, true
	}
	return nil, false
}

func render(t *template.Template, subject string, data OrderEmailData) (Message, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return Message{}, err
	}
	return Message{Subject: subject, HTML: b.String()}, nil
}
