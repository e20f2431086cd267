package user

import (
	domain "tourist-registry-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var docTypeID *uint64
	if model.DocumentTypeID != nil {
		v := uint64(*model.DocumentTypeID)
		docTypeID = &v
	}

	var u = &domain.User{
		UUID:         model.UUID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Role:         domain.Role(model.Role),
		Names:        model.Names,
		LastNames:    model.LastNames,
		BirthDate:    model.BirthDate,
		Phone:        model.Phone,

		DocumentTypeID:    docTypeID,
		DocumentNumber:    model.DocumentNumber,
		DocumentIssueDate: model.DocumentIssueDate,

		AcceptPolicy:         model.AcceptPolicy,
		AcceptDataProcessing: model.AcceptDataProcessing,

		ConfirmationCode: model.ConfirmationCode,
		CodeIssuedAt:     model.CodeIssuedAt,
		IsConfirmed:      model.IsConfirmed,
		IsActive:         model.IsActive,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	return u
}

func toDocTypeParam(u domain.User) *int64 {
	if u.DocumentTypeID == nil {
		return nil
	}
	v := int64(*u.DocumentTypeID)
	return &v
}
