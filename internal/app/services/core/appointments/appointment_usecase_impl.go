package appointments

import (
	"context"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
}

func NewAppointmentUsecase(appointmentRepository contracts.AppointmentRepository) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
	}
}

func (uc *appointmentUsecase) FindAppointmentsByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return uc.AppointmentRepository.FindAppointmentsByPatient(ctx, patientID)
}
