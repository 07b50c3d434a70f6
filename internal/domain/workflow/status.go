package workflow

import (
	"time"

	"github.com/delp/portal-notas-api/internal/domain"
	"github.com/delp/portal-notas-api/internal/domain/entity"
)

// Transiciones del flujo de revisión:
//
//	IN_REVIEW ──(admin)──► RECEIVED          terminal, trava la nota
//	IN_REVIEW ──(admin + motivo)──► PENDING  corrección pendiente
//	PENDING   ──(admin)──► RECEIVED
//	PENDING   ──(autor o admin)──► IN_REVIEW repost: CreatedAt = ahora
//	RECEIVED  ──(solo admin)──► IN_REVIEW    reapertura excepcional, debe loguearse
//
// Toda transición fuera de la tabla se rechaza ANTES de mutar la nota.
// En particular RECEIVED nunca pasa a PENDING.

// Receive marca la nota como RECEIVED. Solo ADMIN, desde IN_REVIEW o PENDING.
func Receive(actor *entity.User, inv *entity.Invoice) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if inv.Status != entity.StatusInReview && inv.Status != entity.StatusPending {
		return domain.ErrConflict
	}
	inv.Status = entity.StatusReceived
	return nil
}

// FlagPending marca una corrección pendiente. Solo ADMIN, desde IN_REVIEW,
// con motivo obligatorio. Limpia cualquier respuesta anterior del autor.
func FlagPending(actor *entity.User, inv *entity.Invoice, reason string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if reason == "" {
		return domain.ErrInvalidInput
	}
	if inv.Status != entity.StatusInReview {
		return domain.ErrConflict
	}
	inv.Status = entity.StatusPending
	inv.AdminObservations = reason
	inv.UserResponse = ""
	return nil
}

// Repost devuelve una nota PENDING a IN_REVIEW. Solo el autor o un ADMIN.
// CreatedAt pasa a now para que la nota re-entre a la cola como recién
// publicada; se registra la respuesta del autor si fue informada y se limpia
// la observación del revisor.
func Repost(actor *entity.User, inv *entity.Invoice, response string, now time.Time) error {
	if inv.Status != entity.StatusPending {
		return domain.ErrConflict
	}
	if !actor.IsAdmin() && actor.ID != inv.UploadedBy {
		return domain.ErrForbidden
	}
	inv.Status = entity.StatusInReview
	inv.CreatedAt = now
	if response != "" {
		inv.UserResponse = response
	}
	inv.AdminObservations = ""
	return nil
}

// Reopen reabre una nota RECEIVED hacia IN_REVIEW. Es la válvula de escape
// exclusiva de ADMIN para correcciones; el caller debe dejar rastro en el log.
func Reopen(actor *entity.User, inv *entity.Invoice) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if inv.Status != entity.StatusReceived {
		return domain.ErrConflict
	}
	inv.Status = entity.StatusInReview
	return nil
}

// CanDelete guarda de borrado: ADMIN siempre; el autor solo mientras la nota
// no esté RECEIVED. Cualquier otro caso es un error de permiso, nunca un no-op.
func CanDelete(actor *entity.User, inv *entity.Invoice) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.ID != inv.UploadedBy {
		return domain.ErrForbidden
	}
	if inv.Status == entity.StatusReceived {
		return domain.ErrRecordLocked
	}
	return nil
}

// CanEdit guarda de edición de campos: mismas reglas que CanDelete
// (una nota RECEIVED queda travada para no-admins).
func CanEdit(actor *entity.User, inv *entity.Invoice) error {
	return CanDelete(actor, inv)
}
