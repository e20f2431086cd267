package registration

import (
	"errors"
	"time"

	"tourist-registry-api/internal/domain/user"
)

const dateLayout = "2006-01-02"

func ToDomainUser(r Request) (user.User, error) {
	birth, err := time.Parse(dateLayout, r.BirthDate)
	if err != nil {
		return user.User{}, errors.New("invalid birth_date format, want YYYY-MM-DD")
	}

	u := user.User{
		Email:                r.Email,
		Phone:                r.Phone,
		Names:                r.Names,
		LastNames:            r.LastNames,
		BirthDate:            &birth,
		DocumentTypeID:       r.DocumentTypeID,
		DocumentNumber:       r.DocumentNumber,
		AcceptPolicy:         r.AcceptPolicy,
		AcceptDataProcessing: r.AcceptDataProcessing,
		Role:                 ToRole(r),
	}

	if r.DocumentIssueDate != "" {
		issued, err := time.Parse(dateLayout, r.DocumentIssueDate)
		if err != nil {
			return user.User{}, errors.New("invalid document_issue_date format, want YYYY-MM-DD")
		}
		u.DocumentIssueDate = &issued
	}

	return u, nil
}

// ToRole collapses the legacy boolean pair; the validator has already
// rejected the both-set case.
func ToRole(r Request) user.Role {
	switch {
	case r.IsTourist:
		return user.RoleTourist
	case r.IsAgency:
		return user.RoleAgency
	default:
		return user.RoleNone
	}
}
