package services

import (
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Yutux/immo-api/internal/config"
	"github.com/Yutux/immo-api/internal/models"
	"github.com/Yutux/immo-api/internal/utils"
)

const ackEmailHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Visit request received</title>
</head>
<body>
  <p>Hello %s,</p>
  <p>We received your visit request and an agent will be in touch shortly
  to confirm a time slot.</p>
  <p>— The %s team</p>
</body>
</html>`

const internalNoticeHTML = `<!DOCTYPE html>
<html>
<body>
  <h2>New visit request</h2>
  <ul>
    <li><strong>Property:</strong> %s</li>
    <li><strong>Requester:</strong> %s &lt;%s&gt;</li>
    <li><strong>Timestamp (UTC):</strong> %s</li>
  </ul>
</body>
</html>`

// NotificationService sends best-effort emails when a visit request comes
// in. Failures are logged and never surface to the HTTP caller.
type NotificationService interface {
	VisitRequestReceived(vr *models.VisitRequest)
}

type notificationService struct {
	cfg            *config.Config
	sendgridClient *sendgrid.Client
	enabled        bool
}

func NewNotificationService(cfg *config.Config) NotificationService {
	enabled := cfg.SendgridAPIKey != ""
	if !enabled {
		utils.Logger.Debug("SENDGRID_API_KEY not set, visit-request notifications disabled")
	}
	return &notificationService{
		cfg:            cfg,
		sendgridClient: sendgrid.NewSendClient(cfg.SendgridAPIKey),
		enabled:        enabled,
	}
}

func (s *notificationService) VisitRequestReceived(vr *models.VisitRequest) {
	if !s.enabled {
		return
	}

	if err := s.sendAck(vr); err != nil {
		utils.Logger.WithError(err).Warn("Failed to send visit-request acknowledgment")
	}
	if s.cfg.NotifyEmail != "" {
		if err := s.sendInternal(vr); err != nil {
			utils.Logger.WithError(err).Warn("Failed to send internal visit-request notice")
		}
	}
}

func (s *notificationService) sendAck(vr *models.VisitRequest) error {
	from := mail.NewEmail(config.AppName, s.cfg.SendgridFromEmail)
	to := mail.NewEmail(vr.RequesterName, vr.RequesterEmail)

	subject := "We received your visit request"
	plain := fmt.Sprintf("Hello %s,\n\nWe received your visit request and will be in touch shortly.", vr.RequesterName)
	html := fmt.Sprintf(ackEmailHTML, vr.RequesterName, config.AppName)

	msg := mail.NewSingleEmail(from, subject, to, plain, html)
	_, err := s.sendgridClient.Send(msg)
	return err
}

func (s *notificationService) sendInternal(vr *models.VisitRequest) error {
	from := mail.NewEmail(config.AppName+" bot", s.cfg.SendgridFromEmail)
	to := mail.NewEmail("", s.cfg.NotifyEmail)

	subject := fmt.Sprintf("[visit-request] %s for property %s", vr.RequesterEmail, vr.PropertyID)
	plain := fmt.Sprintf("New visit request from %s <%s> for property %s.",
		vr.RequesterName, vr.RequesterEmail, vr.PropertyID)
	html := fmt.Sprintf(internalNoticeHTML,
		vr.PropertyID, vr.RequesterName, vr.RequesterEmail,
		time.Now().UTC().Format(time.RFC1123Z))

	msg := mail.NewSingleEmail(from, subject, to, plain, html)
	_, err := s.sendgridClient.Send(msg)
	return err
}
