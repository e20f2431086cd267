package user

const (
	userColumns = `id, uuid, email, password_hash, role, names, last_names, birth_date, phone, document_type_id, document_number, document_issue_date, accept_policy, accept_data_processing, confirmation_code, code_issued_at, is_confirmed, is_active, created_at, updated_at`

	SelectUserByUUID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE uuid = $1
	`
	SelectUserByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	// Resending a code is last-write-wins: the previous code is gone the
	// moment this statement commits.
	UpsertConfirmationCode = `
		INSERT INTO users (email, confirmation_code, code_issued_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
		SET confirmation_code = EXCLUDED.confirmation_code,
		    code_issued_at = EXCLUDED.code_issued_at,
		    updated_at = now()
	`
	// Matching row is confirmed and the code consumed in one statement, so
	// a code can never be redeemed twice.
	ConfirmByCode = `
		UPDATE users
		SET confirmation_code = NULL,
		    is_confirmed = true,
		    updated_at = now()
		WHERE email = $1
		  AND confirmation_code = $2
		  AND code_issued_at >= $3
		RETURNING ` + userColumns + `
	`
	// A placeholder row left by code issuance is completed in place; an
	// already-active account makes the DO UPDATE a no-op and returns no row.
	CompleteRegistration = `
		INSERT INTO users (
			email, password_hash, role, names, last_names, birth_date, phone,
			document_type_id, document_number, document_issue_date,
			accept_policy, accept_data_processing, is_active
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, true)
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    role = EXCLUDED.role,
		    names = EXCLUDED.names,
		    last_names = EXCLUDED.last_names,
		    birth_date = EXCLUDED.birth_date,
		    phone = EXCLUDED.phone,
		    document_type_id = EXCLUDED.document_type_id,
		    document_number = EXCLUDED.document_number,
		    document_issue_date = EXCLUDED.document_issue_date,
		    accept_policy = EXCLUDED.accept_policy,
		    accept_data_processing = EXCLUDED.accept_data_processing,
		    is_active = true,
		    updated_at = now()
		WHERE users.is_active = false
		RETURNING ` + userColumns + `
	`
)
