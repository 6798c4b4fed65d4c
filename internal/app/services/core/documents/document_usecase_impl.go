package documents

import (
	"context"
	"io"

	"nutrivida-service/internal/app/contracts"
	"nutrivida-service/internal/pkg/dto/responses"
)

type documentUsecase struct {
	DocumentStorage contracts.DocumentStorage
}

func NewDocumentUsecase(documentStorage contracts.DocumentStorage) contracts.DocumentUsecase {
	return &documentUsecase{
		DocumentStorage: documentStorage,
	}
}

func (uc *documentUsecase) UploadDocument(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error {
	return uc.DocumentStorage.PutDocument(ctx, name, reader, size, contentType)
}

func (uc *documentUsecase) ListDocuments(ctx context.Context) ([]string, error) {
	return uc.DocumentStorage.ListDocuments(ctx)
}

func (uc *documentUsecase) GetDocumentLink(ctx context.Context, name string) (*responses.DocumentLink, error) {
	return uc.DocumentStorage.PresignDocument(ctx, name)
}
