// Package workflow concentra las reglas de negocio del portal: qué notas puede
// ver cada rol, los filtros de búsqueda y las transiciones de status con sus
// guardas de permiso. Es lógica pura, sin efectos, para que la UI y los
// handlers nunca reimplementen los predicados.
package workflow

import (
	"sort"

	"github.com/delp/portal-notas-api/internal/domain/entity"
)

// Visible decide si el usuario solicitante puede ver la nota, antes de
// cualquier filtro de búsqueda. Precedencia de reglas:
//
//  1. ADMIN ve todo.
//  2. MANAGER ve las notas cuyo UserSector (snapshot) coincide exactamente,
//     case-sensitive, con su sector. Un manager sin sector no ve nada.
//  3. USER ve solo sus propias notas (UploadedBy == user.ID).
func Visible(user *entity.User, inv *entity.Invoice) bool {
	switch user.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleManager:
		return user.Sector != "" && inv.UserSector == user.Sector
	case entity.RoleUser:
		return inv.UploadedBy == user.ID
	default:
		return false
	}
}

// VisibleSet devuelve el subconjunto visible para el usuario. Determinista:
// mismas entradas, mismo conjunto. El orden lo fija SortForDisplay.
func VisibleSet(user *entity.User, invoices []*entity.Invoice) []*entity.Invoice {
	out := make([]*entity.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if Visible(user, inv) {
			out = append(out, inv)
		}
	}
	return out
}

// SortForDisplay ordena por CreatedAt descendente (más reciente primero).
// Empates se resuelven por ID para mantener un orden estable.
func SortForDisplay(invoices []*entity.Invoice) {
	sort.SliceStable(invoices, func(i, j int) bool {
		if invoices[i].CreatedAt.Equal(invoices[j].CreatedAt) {
			return invoices[i].ID < invoices[j].ID
		}
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
}
