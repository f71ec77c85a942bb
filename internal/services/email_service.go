package services

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
	"github.com/velamar/pesca-api/internal/config"
	"github.com/velamar/pesca-api/internal/models"
	"github.com/velamar/pesca-api/internal/report"
	"github.com/velamar/pesca-api/pkg/logger"
)

//go:embed templates/email/*.html
var emailTemplates embed.FS

type EmailService struct {
	config       *config.Config
	resendClient *resend.Client
}

func NewEmailService(cfg *config.Config) *EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &EmailService{
		config:       cfg,
		resendClient: client,
	}
}

// SendLiquidacionCompletada notifies the responsible party that their
// settlement was liquidated, with a link to the report
func (s *EmailService) SendLiquidacionCompletada(ctx context.Context, entrega *models.EntregaRendir, urlPDF string) error {
	if entrega.Responsable.ID == 0 || entrega.Responsable.Email == "" {
		return fmt.Errorf("entrega %d has no responsible email", entrega.ID)
	}

	totales := models.CalcularTotales(entrega.Movimientos)

	data := struct {
		Name             string
		EntregaID        uint
		CentroCosto      string
		FechaLiquidacion string
		TotalAsignado    string
		TotalGastado     string
		Saldo            string
		URLPDF           string
	}{
		Name:             entrega.Responsable.FullName,
		EntregaID:        entrega.ID,
		CentroCosto:      entrega.CentroCosto.Nombre,
		FechaLiquidacion: report.FormatFecha(entrega.FechaLiquidacion),
		TotalAsignado:    fmt.Sprintf("S/ %.2f", totales.TotalAsignado),
		TotalGastado:     fmt.Sprintf("S/ %.2f", totales.TotalGastado),
		Saldo:            fmt.Sprintf("S/ %.2f", totales.Saldo),
		URLPDF:           urlPDF,
	}

	body, err := s.renderTemplate("liquidacion_completada.html", data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.config.FromEmail,
		To:      []string{entrega.Responsable.Email},
		Subject: fmt.Sprintf("Entrega a Rendir #%d Liquidada", entrega.ID),
		Html:    body,
	}
	_, err = s.resendClient.Emails.Send(params)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to send email to %s: %v", entrega.Responsable.Email, err))
		return err
	}

	logger.Info(fmt.Sprintf("📧 [Email Sent] To: %s | Subject: Entrega a Rendir #%d Liquidada", entrega.Responsable.Email, entrega.ID))
	return nil
}

// SendAccountCreated welcomes a newly registered user
func (s *EmailService) SendAccountCreated(ctx context.Context, user *models.User) error {
	data := struct {
		Name   string
		AppURL string
	}{
		Name:   user.FullName,
		AppURL: "https://erp.velamar.app",
	}

	body, err := s.renderTemplate("account_created.html", data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.config.FromEmail,
		To:      []string{user.Email},
		Subject: "¡Bienvenido a Velamar ERP!",
		Html:    body,
	}
	_, err = s.resendClient.Emails.Send(params)
	if err != nil {
		logger.Error(fmt.Sprintf("Failed to send email to %s: %v", user.Email, err))
		return err
	}

	logger.Info(fmt.Sprintf("📧 [Email Sent] To: %s | Subject: ¡Bienvenido a Velamar ERP!", user.Email))
	return nil
}

func (s *EmailService) renderTemplate(name string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(emailTemplates, "templates/email/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}
