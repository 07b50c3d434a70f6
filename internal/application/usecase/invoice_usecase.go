package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/delp/portal-notas-api/internal/application/dto"
	"github.com/delp/portal-notas-api/internal/domain"
	"github.com/delp/portal-notas-api/internal/domain/entity"
	"github.com/delp/portal-notas-api/internal/domain/repository"
	"github.com/delp/portal-notas-api/internal/domain/workflow"
	"github.com/delp/portal-notas-api/pkg/logger"
)

// InvoiceUseCase casos de uso de la nota fiscal: postagem, listado con
// visibilidad por rol, transiciones de status, repost y borrado.
//
// Todos los métodos reciben el actorID del token y recargan el usuario desde
// el repositorio: las decisiones de visibilidad y permiso se toman siempre
// sobre el rol y sector vigentes, no sobre claims posiblemente viejos.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	userRepo    repository.UserRepository
	log         *logger.Logger
	now         func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, userRepo repository.UserRepository, log *logger.Logger) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		userRepo:    userRepo,
		log:         log,
		now:         time.Now,
	}
}

func (uc *InvoiceUseCase) actor(actorID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(actorID)
	if err != nil {
		return nil, domain.ErrForbidden // el usuario del token ya no existe
	}
	return user, nil
}

// Create publica una nota. La escritura no está restringida por rol; el sector
// del autor se copia como snapshot histórico y el status nace IN_REVIEW sin
// importar quién la crea.
func (uc *InvoiceUseCase) Create(actorID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	actor, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	if err := validateInvoiceInput(in); err != nil {
		return nil, err
	}

	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		SupplierID:    in.SupplierID,
		SupplierName:  in.SupplierName,
		SupplierCNPJ:  in.SupplierCNPJ,
		InvoiceNumber: in.InvoiceNumber,
		EmissionDate:  in.EmissionDate,
		OrderNumber:   in.OrderNumber,
		Value:         in.Value,
		DocType:       in.DocType,
		Status:        entity.StatusInReview,
		UploadedBy:    actor.ID,
		UserName:      actor.Name,
		UserSector:    actor.Sector, // snapshot: no sigue ediciones futuras del usuario
		CreatedAt:     uc.now(),
		Observations:  in.Observations,
		FileName:      in.FileName,
		FileRef:       in.FileRef,
	}
	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}
	out := toInvoiceResponse(inv)
	return &out, nil
}

func validateInvoiceInput(in dto.CreateInvoiceRequest) error {
	if in.SupplierName == "" || in.InvoiceNumber == "" || in.EmissionDate == "" {
		return domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.EmissionDate); err != nil {
		return domain.ErrInvalidInput
	}
	if in.Value.IsNegative() {
		return domain.ErrInvalidInput
	}
	if in.DocType != "" && !entity.ValidDocType(in.DocType) {
		return domain.ErrInvalidInput
	}
	return nil
}

// List devuelve las notas visibles para el actor, con los filtros de búsqueda
// aplicados y ordenadas por CreatedAt descendente.
func (uc *InvoiceUseCase) List(actorID string, f dto.InvoiceFilter) ([]dto.InvoiceResponse, error) {
	visible, err := uc.VisibleEntities(actorID, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceResponse, 0, len(visible))
	for _, inv := range visible {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// VisibleEntities aplica visibilidad + filtros + orden y devuelve entidades.
// Lo comparten el listado, los reportes (CSV/PDF/XML/ZIP) y el resumen AI,
// para que ninguna salida escape a las reglas de rol.
func (uc *InvoiceUseCase) VisibleEntities(actorID string, f dto.InvoiceFilter) ([]*entity.Invoice, error) {
	actor, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	all, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	criteria := workflow.Criteria{
		SupplierName:  f.SupplierName,
		InvoiceNumber: f.InvoiceNumber,
		UserName:      f.UserName,
		Sector:        f.Sector,
		EmissionFrom:  f.EmissionFrom,
		EmissionTo:    f.EmissionTo,
		PostedFrom:    f.PostedFrom,
		PostedTo:      f.PostedTo,
	}
	visible := criteria.Apply(workflow.VisibleSet(actor, all))
	workflow.SortForDisplay(visible)
	return visible, nil
}

// Get devuelve una nota si el actor puede verla.
func (uc *InvoiceUseCase) Get(actorID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.visibleByID(actorID, id)
	if err != nil {
		return nil, err
	}
	out := toInvoiceResponse(inv)
	return &out, nil
}

// GetAttachment devuelve nombre y referencia del adjunto, con chequeo de visibilidad.
func (uc *InvoiceUseCase) GetAttachment(actorID, id string) (fileName, fileRef string, err error) {
	inv, err := uc.visibleByID(actorID, id)
	if err != nil {
		return "", "", err
	}
	if inv.FileRef == "" {
		return "", "", domain.ErrNotFound
	}
	return inv.FileName, inv.FileRef, nil
}

func (uc *InvoiceUseCase) visibleByID(actorID, id string) (*entity.Invoice, error) {
	actor, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	// Una nota fuera del alcance del rol se reporta como inexistente.
	if !workflow.Visible(actor, inv) {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// Update edita campos de la nota. Autor mientras no esté RECEIVED; admin siempre.
func (uc *InvoiceUseCase) Update(actorID, id string, patch dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	actor, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := workflow.CanEdit(actor, inv); err != nil {
		return nil, err
	}
	applyPatch(inv, patch)
	if inv.Value.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if inv.DocType != "" && !entity.ValidDocType(inv.DocType) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	out := toInvoiceResponse(inv)
	return &out, nil
}

func applyPatch(inv *entity.Invoice, p dto.UpdateInvoiceRequest) {
	if p.SupplierName != nil {
		inv.SupplierName = *p.SupplierName
	}
	if p.SupplierCNPJ != nil {
		inv.SupplierCNPJ = *p.SupplierCNPJ
	}
	if p.InvoiceNumber != nil {
		inv.InvoiceNumber = *p.InvoiceNumber
	}
	if p.EmissionDate != nil {
		inv.EmissionDate = *p.EmissionDate
	}
	if p.OrderNumber != nil {
		inv.OrderNumber = *p.OrderNumber
	}
	if p.Value != nil {
		inv.Value = *p.Value
	}
	if p.DocType != nil {
		inv.DocType = *p.DocType
	}
	if p.Observations != nil {
		inv.Observations = *p.Observations
	}
}

// ChangeStatus aplica una transición del revisor: RECEIVED, PENDING (con
// motivo) o la reapertura excepcional RECEIVED → IN_REVIEW. La guarda se
// evalúa ANTES de cualquier mutación persistida.
func (uc *InvoiceUseCase) ChangeStatus(actorID, id string, in dto.ChangeStatusRequest) (*dto.InvoiceResponse, error) {
	actor, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	switch in.Status {
	case entity.StatusReceived:
		err = workflow.Receive(actor, inv)
	case entity.StatusPending:
		err = workflow.FlagPending(actor, inv, in.AdminObservations)
	case entity.StatusInReview:
		if err = workflow.Reopen(actor, inv); err == nil {
			// Válvula de escape: debe quedar rastro observable.
			uc.log.Warn().
				Str("invoice_id", inv.ID).
				Str("admin_id", actor.ID).
				Msg("nota RECEIVED reabierta a IN_REVIEW por administrador")
		}
	default:
		err = domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}

	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	out := toInvoiceResponse(inv)
	return &out, nil
}

// Repost devuelve una nota PENDING a IN_REVIEW (autor o admin). CreatedAt
// avanza a ahora y la nota re-entra a la cola de revisión.
func (uc *InvoiceUseCase) Repost(actorID, id string, in dto.RepostRequest) (*dto.InvoiceResponse, error) {
	actor, err := uc.actor(actorID)
	if err != nil {
		return nil, err
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := workflow.Repost(actor, inv, in.UserResponse, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	out := toInvoiceResponse(inv)
	return &out, nil
}

// Delete borra una nota respetando la guarda: admin siempre, autor solo
// mientras no esté RECEIVED. El rechazo es un error de permiso explícito.
func (uc *InvoiceUseCase) Delete(actorID, id string) error {
	actor, err := uc.actor(actorID)
	if err != nil {
		return err
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := workflow.CanDelete(actor, inv); err != nil {
		return err
	}
	return uc.invoiceRepo.Delete(id)
}

func toInvoiceResponse(inv *entity.Invoice) dto.InvoiceResponse {
	value := inv.Value
	if value.IsZero() {
		value = decimal.Zero
	}
	return dto.InvoiceResponse{
		ID:                inv.ID,
		SupplierID:        inv.SupplierID,
		SupplierName:      inv.SupplierName,
		SupplierCNPJ:      inv.SupplierCNPJ,
		InvoiceNumber:     inv.InvoiceNumber,
		EmissionDate:      inv.EmissionDate,
		OrderNumber:       inv.OrderNumber,
		Value:             value,
		DocType:           inv.DocType,
		Status:            inv.Status,
		UploadedBy:        inv.UploadedBy,
		UserName:          inv.UserName,
		UserSector:        inv.UserSector,
		CreatedAt:         inv.CreatedAt,
		Observations:      inv.Observations,
		AdminObservations: inv.AdminObservations,
		UserResponse:      inv.UserResponse,
		FileName:          inv.FileName,
	}
}
