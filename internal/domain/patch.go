package domain

// Patch types carry partial updates. Nil fields are left untouched; set
// fields overwrite the stored value. Dependent fields (tokenizedValue) are
// recomputed by the service, never taken from the caller.

// AssetPatch is a partial update for an Asset.
type AssetPatch struct {
	Name            *string      `json:"name" binding:"omitempty,min=1"`
	Type            *AssetType   `json:"type" binding:"omitempty,oneof=real_estate invoice equipment"`
	Subtype         *string      `json:"subtype"`
	Description     *string      `json:"description"`
	Location        *string      `json:"location"`
	Company         *string      `json:"company"`
	Value           *float64     `json:"value" binding:"omitempty,gte=0"`
	Tokenized       *float64     `json:"tokenized" binding:"omitempty,gte=0,lte=100"`
	Liquidity       *string      `json:"liquidity" binding:"omitempty,oneof=high medium low"`
	Blockchain      *Blockchain  `json:"blockchain" binding:"omitempty,oneof=ethereum polygon"`
	Status          *AssetStatus `json:"status" binding:"omitempty,oneof=draft pending active compliance_issue"`
	IPFSHash        *string      `json:"ipfsHash"`
	ContractAddress *string      `json:"contractAddress"`
	Metadata        JSONMap      `json:"metadata"`
}

// Apply overwrites a's fields with the patch's set fields and returns
// whether value or tokenized changed.
func (p AssetPatch) Apply(a *Asset) (amountsChanged bool) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Subtype != nil {
		a.Subtype = *p.Subtype
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Company != nil {
		a.Company = *p.Company
	}
	if p.Value != nil {
		a.Value = *p.Value
		amountsChanged = true
	}
	if p.Tokenized != nil {
		a.Tokenized = *p.Tokenized
		amountsChanged = true
	}
	if p.Liquidity != nil {
		a.Liquidity = *p.Liquidity
	}
	if p.Blockchain != nil {
		a.Blockchain = *p.Blockchain
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.IPFSHash != nil {
		a.IPFSHash = *p.IPFSHash
	}
	if p.ContractAddress != nil {
		a.ContractAddress = *p.ContractAddress
	}
	if p.Metadata != nil {
		a.Metadata = p.Metadata
	}
	return amountsChanged
}

// CompliancePatch is a partial update for a Compliance record.
type CompliancePatch struct {
	Jurisdiction    *string `json:"jurisdiction" binding:"omitempty,min=1"`
	KYCRequired     *bool   `json:"kycRequired"`
	KYCCompleted    *bool   `json:"kycCompleted"`
	TemplateUsed    *string `json:"templateUsed"`
	RegulatoryNotes *string `json:"regulatoryNotes"`
	ComplianceScore *int    `json:"complianceScore" binding:"omitempty,gte=0,lte=100"`
}

// Apply overwrites c's fields with the patch's set fields.
func (p CompliancePatch) Apply(c *Compliance) {
	if p.Jurisdiction != nil {
		c.Jurisdiction = *p.Jurisdiction
	}
	if p.KYCRequired != nil {
		c.KYCRequired = *p.KYCRequired
	}
	if p.KYCCompleted != nil {
		c.KYCCompleted = *p.KYCCompleted
	}
	if p.TemplateUsed != nil {
		c.TemplateUsed = *p.TemplateUsed
	}
	if p.RegulatoryNotes != nil {
		c.RegulatoryNotes = *p.RegulatoryNotes
	}
	if p.ComplianceScore != nil {
		score := *p.ComplianceScore
		c.ComplianceScore = &score
	}
}

// TransactionPatch is a partial update for a Transaction. AssetID and
// TransactionType are fixed at creation and cannot be patched.
type TransactionPatch struct {
	TokenAmount     *float64           `json:"tokenAmount" binding:"omitempty,gt=0"`
	ValueAmount     *float64           `json:"valueAmount" binding:"omitempty,gte=0"`
	Status          *TransactionStatus `json:"status" binding:"omitempty,oneof=pending completed cancelled active"`
	TransactionHash *string            `json:"transactionHash"`
}

// Apply overwrites t's fields with the patch's set fields.
func (p TransactionPatch) Apply(t *Transaction) {
	if p.TokenAmount != nil {
		t.TokenAmount = *p.TokenAmount
	}
	if p.ValueAmount != nil {
		t.ValueAmount = *p.ValueAmount
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.TransactionHash != nil {
		t.TransactionHash = *p.TransactionHash
	}
}
