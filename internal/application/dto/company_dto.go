package dto

// CreateCompanyRequest body for POST /api/companies.
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	GSTIN       string `json:"gstin,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	State       string `json:"state,omitempty"`
	TaxType     string `json:"tax_type,omitempty"` // GST (default) or NON-GST
	FYStart     string `json:"fy_start,omitempty"` // YYYY-MM-DD
	FYEnd       string `json:"fy_end,omitempty"`
	BankName    string `json:"bank_name,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`
	BankIFSC    string `json:"bank_ifsc,omitempty"`
	Terms       string `json:"terms,omitempty"`
}

// CompanyResponse company in responses.
type CompanyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	GSTIN       string `json:"gstin,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	State       string `json:"state,omitempty"`
	TaxType     string `json:"tax_type"`
	FYStart     string `json:"fy_start,omitempty"`
	FYEnd       string `json:"fy_end,omitempty"`
	BankName    string `json:"bank_name,omitempty"`
	BankAccount string `json:"bank_account,omitempty"`
	BankIFSC    string `json:"bank_ifsc,omitempty"`
	Terms       string `json:"terms,omitempty"`
}
