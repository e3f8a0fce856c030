package service

import (
	"context"
	"sort"

	"github.com/relocaid/relocaid-api/internal/domain/entity"
	"github.com/relocaid/relocaid-api/internal/domain/enum"
	domainRepo "github.com/relocaid/relocaid-api/internal/domain/repository"
	"gorm.io/gorm"
)

// fakeStore is a shared in-memory backing store for the repository fakes
type fakeStore struct {
	invoices    map[uint]*entity.Invoice
	items       map[uint][]entity.LineItem
	payments    map[uint][]entity.Payment
	submissions map[uint]*entity.Submission
	settings    *entity.CompanySettings
	templates   map[string]*entity.EmailTemplate

	nextInvoiceID    uint
	nextItemID       uint
	nextPaymentID    uint
	nextSubmissionID uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		invoices:    make(map[uint]*entity.Invoice),
		items:       make(map[uint][]entity.LineItem),
		payments:    make(map[uint][]entity.Payment),
		submissions: make(map[uint]*entity.Submission),
		templates:   make(map[string]*entity.EmailTemplate),
	}
}

type fakeTxManager struct{}

func (fakeTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeInvoiceRepo struct {
	store *fakeStore
	// createErrs is consumed one error per Create call, simulating
	// transient failures such as unique violations
	createErrs []error
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if len(r.createErrs) > 0 {
		err := r.createErrs[0]
		r.createErrs = r.createErrs[1:]
		if err != nil {
			return err
		}
	}
	for _, existing := range r.store.invoices {
		if existing.InvoiceNumber == invoice.InvoiceNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	r.store.nextInvoiceID++
	invoice.ID = r.store.nextInvoiceID
	stored := *invoice
	r.store.invoices[invoice.ID] = &stored
	return nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id uint) (*entity.Invoice, error) {
	stored, ok := r.store.invoices[id]
	if !ok {
		return nil, nil
	}
	invoice := *stored
	items := append([]entity.LineItem(nil), r.store.items[id]...)
	sort.Slice(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })
	invoice.Items = items
	return &invoice, nil
}

func (r *fakeInvoiceRepo) GetByIDForUpdate(ctx context.Context, id uint) (*entity.Invoice, error) {
	stored, ok := r.store.invoices[id]
	if !ok {
		return nil, nil
	}
	invoice := *stored
	return &invoice, nil
}

func (r *fakeInvoiceRepo) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	for _, stored := range r.store.invoices {
		if stored.InvoiceNumber == number {
			invoice := *stored
			return &invoice, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	for _, stored := range r.store.invoices {
		if stored.InvoiceNumber == number {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeInvoiceRepo) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	for _, stored := range r.store.invoices {
		if params.Status != nil && stored.Status != *params.Status {
			continue
		}
		invoices = append(invoices, *stored)
	}
	sort.Slice(invoices, func(i, j int) bool { return invoices[i].ID > invoices[j].ID })
	return invoices, int64(len(invoices)), nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	stored := *invoice
	stored.Items = nil
	r.store.invoices[invoice.ID] = &stored
	return nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id uint) error {
	delete(r.store.invoices, id)
	return nil
}

type fakeLineItemRepo struct {
	store *fakeStore
}

func (r *fakeLineItemRepo) CreateBatch(ctx context.Context, items []entity.LineItem) error {
	for i := range items {
		r.store.nextItemID++
		items[i].ID = r.store.nextItemID
		r.store.items[items[i].InvoiceID] = append(r.store.items[items[i].InvoiceID], items[i])
	}
	return nil
}

func (r *fakeLineItemRepo) GetByInvoiceID(ctx context.Context, invoiceID uint) ([]entity.LineItem, error) {
	items := append([]entity.LineItem(nil), r.store.items[invoiceID]...)
	sort.Slice(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })
	return items, nil
}

func (r *fakeLineItemRepo) DeleteByInvoiceID(ctx context.Context, invoiceID uint) error {
	delete(r.store.items, invoiceID)
	return nil
}

type fakePaymentRepo struct {
	store *fakeStore
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	r.store.nextPaymentID++
	payment.ID = r.store.nextPaymentID
	r.store.payments[payment.InvoiceID] = append(r.store.payments[payment.InvoiceID], *payment)
	return nil
}

func (r *fakePaymentRepo) GetByInvoiceID(ctx context.Context, invoiceID uint) ([]entity.Payment, error) {
	payments := append([]entity.Payment(nil), r.store.payments[invoiceID]...)
	sort.Slice(payments, func(i, j int) bool {
		if payments[i].PaymentDate.Equal(payments[j].PaymentDate) {
			return payments[i].ID > payments[j].ID
		}
		return payments[i].PaymentDate.After(payments[j].PaymentDate)
	})
	return payments, nil
}

func (r *fakePaymentRepo) DeleteByInvoiceID(ctx context.Context, invoiceID uint) error {
	delete(r.store.payments, invoiceID)
	return nil
}

type fakeSubmissionRepo struct {
	store *fakeStore
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, submission *entity.Submission) error {
	r.store.nextSubmissionID++
	submission.ID = r.store.nextSubmissionID
	stored := *submission
	r.store.submissions[submission.ID] = &stored
	return nil
}

func (r *fakeSubmissionRepo) GetByID(ctx context.Context, id uint) (*entity.Submission, error) {
	stored, ok := r.store.submissions[id]
	if !ok {
		return nil, nil
	}
	submission := *stored
	return &submission, nil
}

func (r *fakeSubmissionRepo) GetByReference(ctx context.Context, reference string) (*entity.Submission, error) {
	for _, stored := range r.store.submissions {
		if stored.Reference == reference {
			submission := *stored
			return &submission, nil
		}
	}
	return nil, nil
}

func (r *fakeSubmissionRepo) ExistsByReference(ctx context.Context, reference string) (bool, error) {
	for _, stored := range r.store.submissions {
		if stored.Reference == reference {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSubmissionRepo) List(ctx context.Context, params *domainRepo.SubmissionFilterParams) ([]entity.Submission, int64, error) {
	var submissions []entity.Submission
	for _, stored := range r.store.submissions {
		if params.Status != nil && stored.Status != *params.Status {
			continue
		}
		submissions = append(submissions, *stored)
	}
	sort.Slice(submissions, func(i, j int) bool { return submissions[i].ID > submissions[j].ID })
	return submissions, int64(len(submissions)), nil
}

func (r *fakeSubmissionRepo) UpdateStatus(ctx context.Context, id uint, status enum.SubmissionStatus) error {
	if stored, ok := r.store.submissions[id]; ok {
		stored.Status = status
	}
	return nil
}

func (r *fakeSubmissionRepo) Delete(ctx context.Context, id uint) error {
	delete(r.store.submissions, id)
	return nil
}

type fakeSettingsRepo struct {
	store *fakeStore
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.CompanySettings, error) {
	if r.store.settings == nil {
		return nil, nil
	}
	settings := *r.store.settings
	return &settings, nil
}

func (r *fakeSettingsRepo) Update(ctx context.Context, settings *entity.CompanySettings) error {
	if settings.ID == 0 {
		settings.ID = 1
	}
	stored := *settings
	r.store.settings = &stored
	return nil
}

type fakeTemplateRepo struct {
	store *fakeStore
}

func (r *fakeTemplateRepo) Create(ctx context.Context, template *entity.EmailTemplate) error {
	template.ID = uint(len(r.store.templates) + 1)
	stored := *template
	r.store.templates[template.Slug] = &stored
	return nil
}

func (r *fakeTemplateRepo) GetByID(ctx context.Context, id uint) (*entity.EmailTemplate, error) {
	for _, stored := range r.store.templates {
		if stored.ID == id {
			template := *stored
			return &template, nil
		}
	}
	return nil, nil
}

func (r *fakeTemplateRepo) GetBySlug(ctx context.Context, slug string) (*entity.EmailTemplate, error) {
	stored, ok := r.store.templates[slug]
	if !ok {
		return nil, nil
	}
	template := *stored
	return &template, nil
}

func (r *fakeTemplateRepo) List(ctx context.Context) ([]entity.EmailTemplate, error) {
	var templates []entity.EmailTemplate
	for _, stored := range r.store.templates {
		templates = append(templates, *stored)
	}
	return templates, nil
}

func (r *fakeTemplateRepo) Update(ctx context.Context, template *entity.EmailTemplate) error {
	stored := *template
	r.store.templates[template.Slug] = &stored
	return nil
}

func (r *fakeTemplateRepo) Delete(ctx context.Context, id uint) error {
	for slug, stored := range r.store.templates {
		if stored.ID == id {
			delete(r.store.templates, slug)
			return nil
		}
	}
	return nil
}
