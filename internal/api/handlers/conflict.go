package handlers

import (
	"github.com/GabrielEscala/Proyecto-Salas/internal/domain"
)

// ConflictPayload раскладывает ошибку конфликта слотов на данные ответа
func ConflictPayload(e *domain.SlotConflictError) (conflicts []ConflictEntry, suggestion *string) {
	conflicts = make([]ConflictEntry, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		conflicts = append(conflicts, ConflictEntry{
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Time:      c.Time.String(),
		})
	}
	if e.Suggestion != nil {
		s := e.Suggestion.String()
		suggestion = &s
	}
	return conflicts, suggestion
}
