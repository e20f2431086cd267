package user

import (
	"tourist-registry-api/internal/domain/user"
)

const dateLayout = "2006-01-02"

func ToResponseUser(uDomain user.User) User {
	var u = User{
		UUID:           uDomain.UUID,
		Email:          uDomain.Email,
		Names:          uDomain.Names,
		LastNames:      uDomain.LastNames,
		Phone:          uDomain.Phone,
		Role:           string(uDomain.Role),
		DocumentTypeID: uDomain.DocumentTypeID,
		DocumentNumber: uDomain.DocumentNumber,
		IsConfirmed:    uDomain.IsConfirmed,
		IsActive:       uDomain.IsActive,
	}
	if uDomain.BirthDate != nil {
		u.BirthDate = uDomain.BirthDate.Format(dateLayout)
	}
	if uDomain.DocumentIssueDate != nil {
		u.DocumentIssueDate = uDomain.DocumentIssueDate.Format(dateLayout)
	}

	return u
}
