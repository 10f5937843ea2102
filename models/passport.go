package models

// PassportData contains information about Telegram Passport data shared
// with the bot by the user.
type PassportData struct {
	Data        []EncryptedPassportElement `json:"data"`
	Credentials EncryptedCredentials       `json:"credentials"`
}

// EncryptedPassportElement contains information about documents or other
// Telegram Passport elements shared with the bot by the user.
type EncryptedPassportElement struct {
	Type        string         `json:"type"`
	Data        string         `json:"data,omitempty"`
	PhoneNumber string         `json:"phone_number,omitempty"`
	Email       string         `json:"email,omitempty"`
	Files       []PassportFile `json:"files,omitempty"`
	FrontSide   *PassportFile  `json:"front_side,omitempty"`
	ReverseSide *PassportFile  `json:"reverse_side,omitempty"`
	Selfie      *PassportFile  `json:"selfie,omitempty"`
	Translation []PassportFile `json:"translation,omitempty"`
	Hash        string         `json:"hash"`
}

// PassportFile represents a file uploaded to Telegram Passport.
type PassportFile struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileSize     int    `json:"file_size"`
	FileDate     int64  `json:"file_date"`
}

// EncryptedCredentials contains data required for decrypting and
// authenticating EncryptedPassportElement.
type EncryptedCredentials struct {
	Data   string `json:"data"`
	Hash   string `json:"hash"`
	Secret string `json:"secret"`
}

// PassportElementError represents an error in the Telegram Passport element
// which was submitted and should be resolved by the user. Source selects the
// error kind; the optional fields apply to specific sources only.
type PassportElementError struct {
	Source    string `json:"source"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	FieldName string `json:"field_name,omitempty"`
	DataHash  string `json:"data_hash,omitempty"`
	FileHash  string `json:"file_hash,omitempty"`
	// FileHashes applies to the "files" and "translation_files" sources.
	FileHashes []string `json:"file_hashes,omitempty"`
	// ElementHash applies to the "unspecified" source.
	ElementHash string `json:"element_hash,omitempty"`
}
