package registration

type (
	SendCodeRequest struct {
		Email string `json:"email"`
	}
	VerifyCodeRequest struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	Request struct {
		Email             string  `json:"email"`
		Phone             string  `json:"phone"`
		Names             string  `json:"names"`
		LastNames         string  `json:"last_names"`
		BirthDate         string  `json:"birth_date"`
		DocumentTypeID    *uint64 `json:"document_type_id"`
		DocumentNumber    string  `json:"document_number"`
		DocumentIssueDate string  `json:"document_issue_date"`
		// legacy wire shape: two flags; they collapse into a single role
		IsTourist            bool   `json:"is_tourist"`
		IsAgency             bool   `json:"is_agency"`
		AcceptPolicy         bool   `json:"accept_policy"`
		AcceptDataProcessing bool   `json:"accept_data_processing"`
		Password             string `json:"password"`
	}
)
