package converter

import (
	"clinic-registry/internal/delivery/dto"
	"clinic-registry/internal/domain/entity"
)

func StatsToResponse(stats *entity.Stats) *dto.StatsResponse {
	return &dto.StatsResponse{
		Patients:          stats.Patients,
		TodayAppointments: stats.TodayAppointments,
		Doctors:           stats.Doctors,
		Departments:       stats.Departments,
	}
}
