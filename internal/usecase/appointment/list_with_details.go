package appointment

import (
	"context"

	domain "github.com/TurnosApp/turnos-api/internal/domain/appointment"
	"github.com/TurnosApp/turnos-api/internal/dto"
)

type ListTurnosWithDetails struct {
	repo domain.Repository
}

func NewListTurnosWithDetails(
	repo domain.Repository,
) *ListTurnosWithDetails {
	return &ListTurnosWithDetails{
		repo: repo,
	}
}

func (uc *ListTurnosWithDetails) Execute(
	ctx context.Context,
	filter domain.DetailFilter,
) ([]dto.TurnoDetailDTO, error) {

	appointments, err := uc.repo.ListAppointmentsDetailed(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.TurnoDetailDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.TurnoDetailDTO{
			ID:           ap.ID,
			Date:         ap.Date,
			StartTime:    ap.StartTime,
			EndTime:      ap.EndTime,
			Status:       ap.Status,
			Notes:        ap.Notes,
			EmployeeName: ap.Employee.Name,
			ClientName:   ap.Client.Name,
			ClientPhone:  ap.Client.Phone,
			ServiceName:  ap.Service.Name,
		})
	}

	return out, nil
}
