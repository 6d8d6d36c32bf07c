package models

type Certification struct {
	SectionMeta `bson:",inline"`

	Name         string `bson:"name" json:"name"`
	Issuer       string `bson:"issuer,omitempty" json:"issuer,omitempty"`
	IssueDate    string `bson:"issue_date,omitempty" json:"issue_date,omitempty"`
	ExpiryDate   string `bson:"expiry_date,omitempty" json:"expiry_date,omitempty"`
	CredentialID string `bson:"credential_id,omitempty" json:"credential_id,omitempty"`
	URL          string `bson:"url,omitempty" json:"url,omitempty"`
}
