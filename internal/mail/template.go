package mail

import (
	"fmt"
	"strings"
	"time"

	"github.com/osteele/liquid"

	"github.com/plannerhq/backend/internal/domain"
)

// confirmationHTML is the fixed invitation body. Both the trip confirmation
// fan-out and the invite flow render this same template; only the recipient
// and the per-participant confirmation link vary.
const confirmationHTML = `
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6">
  <p>
    voce foi convidado para participar de uma viagem para <strong>{{ destination }}</strong>
    nas datas de <strong>{{ starts_at }}</strong> ate <strong>{{ ends_at }}</strong>.
  </p>
  <p>
    para confirmar sua viagem, clique no link abaixo:
  </p>
  <p>
    <a href="{{ confirm_link }}">confirme sua viagem</a>
  </p>
  <p>
    caso voce nao saiba do que se trata esse email, apenas ignore esse email.
  </p>
</div>`

var (
	engine               = liquid.NewEngine()
	confirmationTemplate = mustParse(confirmationHTML)
)

func mustParse(src string) *liquid.Template {
	tpl, err := engine.ParseString(strings.TrimSpace(src))
	if err != nil {
		panic("mail: parse confirmation template: " + err.Error())
	}
	return tpl
}

// ConfirmationMessage renders the confirmation email for one participant of
// the given trip. confirmLink must be the participant-specific link
// ("{API_BASE_URL}/participants/{id}/confirm").
func ConfirmationMessage(from Sender, trip domain.Trip, toEmail, confirmLink string) (Message, error) {
	starts := FormatLongDate(trip.StartsAt)
	ends := FormatLongDate(trip.EndsAt)

	html, err := confirmationTemplate.RenderString(liquid.Bindings{
		"destination":  trip.Destination,
		"starts_at":    starts,
		"ends_at":      ends,
		"confirm_link": confirmLink,
	})
	if err != nil {
		return Message{}, fmt.Errorf("mail.ConfirmationMessage: render: %w", err)
	}

	return Message{
		From:    from,
		To:      toEmail,
		Subject: fmt.Sprintf("confirme sua presença na viagem para %s em %s", trip.Destination, starts),
		HTML:    html,
	}, nil
}

// longMonths holds pt-BR month names for FormatLongDate.
var longMonths = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatLongDate renders t as a Brazilian Portuguese long date,
// e.g. "2 de janeiro de 2024".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), longMonths[t.Month()-1], t.Year())
}
