package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	"github.com/relocaid/relocaid-api/internal/domain/repository"
	"github.com/relocaid/relocaid-api/pkg/apperror"
	"github.com/relocaid/relocaid-api/pkg/email"
	"github.com/relocaid/relocaid-api/pkg/money"
	"github.com/relocaid/relocaid-api/pkg/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceService handles invoice lifecycle operations
type InvoiceService struct {
	invoiceRepo    repository.InvoiceRepository
	lineItemRepo   repository.LineItemRepository
	paymentRepo    repository.PaymentRepository
	submissionRepo repository.SubmissionRepository
	settingsRepo   repository.SettingsRepository
	templateRepo   repository.EmailTemplateRepository
	txManager      repository.TxManager
	emailService   *email.EmailService
	numbers        *NumberGenerator
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	lineItemRepo repository.LineItemRepository,
	paymentRepo repository.PaymentRepository,
	submissionRepo repository.SubmissionRepository,
	settingsRepo repository.SettingsRepository,
	templateRepo repository.EmailTemplateRepository,
	txManager repository.TxManager,
	emailService *email.EmailService,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:    invoiceRepo,
		lineItemRepo:   lineItemRepo,
		paymentRepo:    paymentRepo,
		submissionRepo: submissionRepo,
		settingsRepo:   settingsRepo,
		templateRepo:   templateRepo,
		txManager:      txManager,
		emailService:   emailService,
		numbers:        NewInvoiceNumberGenerator(invoiceRepo.ExistsByNumber),
	}
}

// LineItemInput represents one priced row of a new or replaced invoice
type LineItemInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	SubmissionID  *uint
	ClientName    string
	ClientEmail   string
	ClientAddress string
	IssueDate     *time.Time
	DueDate       *time.Time
	ServiceDate   *time.Time
	TaxRate       *decimal.Decimal
	Currency      string
	Notes         *string
	Terms         *string
	Items         []LineItemInput
	CreatedBy     *uuid.UUID
}

// CreateInvoice creates a new invoice with its line items. Client fields
// left empty are filled from the linked submission, defaults come from the
// company settings.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Invoice requires at least one line item")
	}

	var submission *entity.Submission
	if input.SubmissionID != nil {
		var err error
		submission, err = s.submissionRepo.GetByID(ctx, *input.SubmissionID)
		if err != nil {
			return nil, err
		}
		if submission == nil {
			return nil, apperror.NewNotFoundError("Submission")
		}
	}

	clientName := input.ClientName
	clientEmail := input.ClientEmail
	clientAddress := input.ClientAddress
	if submission != nil {
		if clientName == "" {
			clientName = submission.FullName()
		}
		if clientEmail == "" {
			clientEmail = submission.Email
		}
		if clientAddress == "" {
			clientAddress = submission.PostalAddress()
		}
	}
	if clientName == "" {
		return nil, apperror.NewBadRequestError("Client name is required")
	}

	// Settings provide the defaults; failures fall back to fixed values so
	// invoicing keeps working when the settings row is missing.
	taxRate := decimal.NewFromInt(19)
	termDays := 14
	currency := "EUR"
	var defaultTerms *string
	if settings, err := s.settingsRepo.Get(ctx); err == nil && settings != nil {
		taxRate = settings.DefaultTaxRate
		termDays = settings.PaymentTermDays
		currency = settings.Currency
		defaultTerms = settings.DefaultTerms
	}

	if input.TaxRate != nil {
		taxRate = *input.TaxRate
	}
	if input.Currency != "" {
		currency = input.Currency
	}

	issueDate := time.Now().Truncate(24 * time.Hour)
	if input.IssueDate != nil {
		issueDate = *input.IssueDate
	}
	dueDate := issueDate.AddDate(0, 0, termDays)
	if input.DueDate != nil {
		dueDate = *input.DueDate
	}

	terms := input.Terms
	if terms == nil {
		terms = defaultTerms
	}

	items := make([]entity.LineItem, 0, len(input.Items))
	amounts := make([]decimal.Decimal, 0, len(input.Items))
	for i, item := range input.Items {
		amount := money.LineAmount(item.Quantity, item.UnitPrice)
		amounts = append(amounts, amount)
		items = append(items, entity.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      amount,
			SortOrder:   i,
		})
	}
	subtotal := money.Subtotal(amounts)
	taxAmount := money.TaxAmount(subtotal, taxRate)
	total := money.Total(subtotal, taxAmount)

	// Numbers derived from a submission reference are deterministic; only
	// generated numbers may be retried on a unique collision.
	number := ""
	derived := false
	if submission != nil {
		number, derived = s.numbers.FromSource(submission.Reference)
	}
	if !derived {
		var err error
		number, err = s.numbers.Generate(ctx)
		if err != nil {
			return nil, err
		}
	}

	invoice := &entity.Invoice{
		InvoiceNumber: number,
		SubmissionID:  input.SubmissionID,
		ClientName:    clientName,
		ClientEmail:   clientEmail,
		ClientAddress: clientAddress,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		ServiceDate:   input.ServiceDate,
		Subtotal:      subtotal,
		TaxRate:       taxRate,
		TaxAmount:     taxAmount,
		Total:         total,
		Currency:      currency,
		Status:        enum.InvoiceStatusDraft,
		PaidAmount:    decimal.Zero,
		Notes:         input.Notes,
		Terms:         terms,
		CreatedBy:     input.CreatedBy,
	}

	for attempt := 0; ; attempt++ {
		err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
			if err := s.invoiceRepo.Create(txCtx, invoice); err != nil {
				return err
			}
			for i := range items {
				items[i].InvoiceID = invoice.ID
			}
			return s.lineItemRepo.CreateBatch(txCtx, items)
		})
		if err == nil {
			break
		}
		// A derived number colliding means the submission was invoiced
		// before; surface that instead of retrying.
		if !errors.Is(err, gorm.ErrDuplicatedKey) || derived || attempt >= 2 {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperror.NewConflictError("Invoice number " + invoice.InvoiceNumber + " already exists")
			}
			return nil, err
		}

		number, err = s.numbers.Generate(ctx)
		if err != nil {
			return nil, err
		}
		invoice.ID = 0
		invoice.InvoiceNumber = number
		for i := range items {
			items[i].ID = 0
			items[i].InvoiceID = 0
		}
	}

	return s.invoiceRepo.GetByID(ctx, invoice.ID)
}

// GetInvoice retrieves an invoice with its line items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uint) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices with filtering
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// UpdateInvoiceInput represents the update invoice input. Nil fields keep
// their stored value.
type UpdateInvoiceInput struct {
	ClientName    *string
	ClientEmail   *string
	ClientAddress *string
	IssueDate     *time.Time
	DueDate       *time.Time
	ServiceDate   *time.Time
	TaxRate       *decimal.Decimal
	Currency      *string
	Status        *enum.InvoiceStatus
	Notes         *string
	Terms         *string
}

// UpdateInvoice merges the input into the stored invoice. Changing the tax
// rate recomputes the totals from the stored line items.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uint, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if input.ClientName != nil {
		invoice.ClientName = *input.ClientName
	}
	if input.ClientEmail != nil {
		invoice.ClientEmail = *input.ClientEmail
	}
	if input.ClientAddress != nil {
		invoice.ClientAddress = *input.ClientAddress
	}
	if input.IssueDate != nil {
		invoice.IssueDate = *input.IssueDate
	}
	if input.DueDate != nil {
		invoice.DueDate = *input.DueDate
	}
	if input.ServiceDate != nil {
		invoice.ServiceDate = input.ServiceDate
	}
	if input.Currency != nil {
		invoice.Currency = *input.Currency
	}
	if input.Notes != nil {
		invoice.Notes = input.Notes
	}
	if input.Terms != nil {
		invoice.Terms = input.Terms
	}
	if input.Status != nil {
		if err := input.Status.Validate(); err != nil {
			return nil, apperror.NewBadRequestError(err.Error())
		}
		invoice.Status = *input.Status
	}

	if input.TaxRate != nil {
		invoice.TaxRate = *input.TaxRate
		amounts := make([]decimal.Decimal, 0, len(invoice.Items))
		for _, item := range invoice.Items {
			amounts = append(amounts, item.Amount)
		}
		invoice.Subtotal = money.Subtotal(amounts)
		invoice.TaxAmount = money.TaxAmount(invoice.Subtotal, invoice.TaxRate)
		invoice.Total = money.Total(invoice.Subtotal, invoice.TaxAmount)
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetByID(ctx, id)
}

// ReplaceItems swaps the full set of line items and recomputes the totals
// in one transaction.
func (s *InvoiceService) ReplaceItems(ctx context.Context, id uint, inputs []LineItemInput) (*entity.Invoice, error) {
	if len(inputs) == 0 {
		return nil, apperror.NewBadRequestError("Invoice requires at least one line item")
	}

	err := s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		invoice, err := s.invoiceRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if invoice == nil {
			return apperror.NewNotFoundError("Invoice")
		}

		if err := s.lineItemRepo.DeleteByInvoiceID(txCtx, id); err != nil {
			return err
		}

		items := make([]entity.LineItem, 0, len(inputs))
		amounts := make([]decimal.Decimal, 0, len(inputs))
		for i, item := range inputs {
			amount := money.LineAmount(item.Quantity, item.UnitPrice)
			amounts = append(amounts, amount)
			items = append(items, entity.LineItem{
				InvoiceID:   id,
				Description: item.Description,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Amount:      amount,
				SortOrder:   i,
			})
		}
		if err := s.lineItemRepo.CreateBatch(txCtx, items); err != nil {
			return err
		}

		invoice.Subtotal = money.Subtotal(amounts)
		invoice.TaxAmount = money.TaxAmount(invoice.Subtotal, invoice.TaxRate)
		invoice.Total = money.Total(invoice.Subtotal, invoice.TaxAmount)
		return s.invoiceRepo.Update(txCtx, invoice)
	})
	if err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetByID(ctx, id)
}

// DeleteInvoice removes an invoice together with its line items and
// payments.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uint) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	return s.txManager.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.lineItemRepo.DeleteByInvoiceID(txCtx, id); err != nil {
			return err
		}
		if err := s.paymentRepo.DeleteByInvoiceID(txCtx, id); err != nil {
			return err
		}
		return s.invoiceRepo.Delete(txCtx, id)
	})
}

// SendInvoiceEmail delivers the invoice to the client using the
// invoice-issued template and stamps the send time. The status is not
// advanced automatically; marking an invoice sent stays a manual step.
func (s *InvoiceService) SendInvoiceEmail(ctx context.Context, id uint) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if invoice.ClientEmail == "" {
		return nil, apperror.NewBadRequestError("Invoice has no client email address")
	}
	if !s.emailService.IsConfigured() {
		return nil, apperror.NewAppError(503, "Email delivery is not configured")
	}

	template, err := s.templateRepo.GetBySlug(ctx, entity.TemplateInvoiceIssued)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperror.NewNotFoundError("Email template")
	}

	companyName := "Relocaid"
	if settings, err := s.settingsRepo.Get(ctx); err == nil && settings != nil {
		companyName = settings.CompanyName
	}

	data := map[string]string{
		"ClientName":    invoice.ClientName,
		"InvoiceNumber": invoice.InvoiceNumber,
		"Total":         invoice.Total.StringFixed(money.Scale),
		"Currency":      invoice.Currency,
		"DueDate":       invoice.DueDate.Format("2006-01-02"),
		"CompanyName":   companyName,
	}

	subject, err := email.RenderTemplate(template.Subject, data)
	if err != nil {
		return nil, err
	}
	if err := s.emailService.Send(invoice.ClientEmail, subject, template.Body, data); err != nil {
		return nil, err
	}

	now := time.Now()
	invoice.EmailSentAt = &now
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetByID(ctx, id)
}
