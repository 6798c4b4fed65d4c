package fodmap

import (
	"context"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/app/models"
	"nutrivida-service/internal/pkg/dto/requests"
)

type fodmapUsecase struct {
	FodmapRepository contracts.FodmapRepository
}

func NewFodmapUsecase(fodmapRepository contracts.FodmapRepository) contracts.FodmapUsecase {
	return &fodmapUsecase{
		FodmapRepository: fodmapRepository,
	}
}

func (uc *fodmapUsecase) GetChecklist(ctx context.Context, patientID string) ([]models.FodmapEntry, error) {
	return uc.FodmapRepository.FindEntriesByPatient(ctx, patientID)
}

func (uc *fodmapUsecase) SaveTolerance(ctx context.Context, patientID string, request *requests.SaveFodmapTolerance) (*models.FodmapEntry, error) {
	entry := &models.FodmapEntry{
		PatientID: patientID,
		Food:      request.Food,
		Group:     request.Group,
		Tolerance: request.Tolerance,
		Notes:     request.Notes,
	}
	if err := uc.FodmapRepository.UpsertEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
