package feedonomics

type BaseType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Account struct {
	BaseType
	UserID string `json:"user_id,omitempty"`
}

type Database struct {
	BaseType
	AccountID string `json:"account_id,omitempty"`
	GroupID   string `json:"db_group_id,omitempty"`
}

type Group struct {
	BaseType
	AccountID string `json:"account_id,omitempty"`
}

// Schedule is the cron-style trigger attached to an import or export.
type Schedule struct {
	Day    string `json:"day"`
	Hour   string `json:"hour"`
	Minute string `json:"minute"`
}

type Import struct {
	BaseType
	FileLocation string            `json:"file_location,omitempty"`
	URL          string            `json:"url,omitempty"`
	Tags         map[string]string `json:"tags,omitempty"`
	Schedule     *Schedule         `json:"cron,omitempty"`
}

type Export struct {
	BaseType
	FileName     string            `json:"file_name,omitempty"`
	Protocol     string            `json:"protocol,omitempty"`
	Host         string            `json:"host,omitempty"`
	Username     string            `json:"username,omitempty"`
	Password     string            `json:"password,omitempty"`
	ExportFields []ExportField     `json:"export_fields,omitempty"`
	Tags         map[string]string `json:"tags,omitempty"`
}

type ExportField struct {
	FieldName string `json:"field_name"`
	ExportAs  string `json:"export_field_name,omitempty"`
	Required  bool   `json:"required,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`
}

type Transformer struct {
	ID          string   `json:"id"`
	FieldName   string   `json:"field_name"`
	Selector    string   `json:"selector"`
	Transformer string   `json:"transformer"`
	ExportIDs   []string `json:"export_ids,omitempty"`
	Enabled     bool     `json:"enabled"`
}

type DbField struct {
	BaseType
	Type string `json:"type,omitempty"`
}

// VaultEntry is a remotely stored credential blob, referenced by name and
// interpolated into import configuration via a placeholder token.
type VaultEntry struct {
	BaseType
	Value map[string]string `json:"value,omitempty"`
}

type FtpAccount struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Host     string `json:"host,omitempty"`
}

type Build struct {
	ID     string `json:"id"`
	Status string `json:"status,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// UserInvite grants an existing or invited user a permission level on an
// account.
type UserInvite struct {
	Email      string `json:"email"`
	Permission string `json:"permissions,omitempty"`
}

// BigCommerceAccountRequest is the payload for the vendor-specific account
// creation endpoint.
type BigCommerceAccountRequest struct {
	AccountName string `json:"account_name"`
	StoreHash   string `json:"store_hash"`
	AccessToken string `json:"access_token"`
}
