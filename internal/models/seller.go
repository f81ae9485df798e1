package models

import "strings"

// SellerProfile is the nested shape GET /seller/{id} returns.
type SellerProfile struct {
	Seller  SellerInfo  `json:"seller"`
	Company CompanyInfo `json:"company"`
	KYC     KYCInfo     `json:"kyc"`
	Bank    BankInfo    `json:"bank"`
}

type SellerInfo struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Mobile              string `json:"mobile"`
	Email               string `json:"email"`
	Status              string `json:"status"`
	ApproveStatus       string `json:"approve_status"`
	DeviceToken         string `json:"device_token"`
	Subscription        string `json:"subscription"`
	CurrentPackageID    string `json:"current_package_id"`
	CurrentPackageStart string `json:"current_package_start"`
	CurrentPackageEnd   string `json:"current_package_end"`
}

type CompanyInfo struct {
	CompanyName      string `json:"company_name"`
	CompanyType      string `json:"company_type"`
	CompanyGSTNumber string `json:"company_GST_number"`
	CompanyWebsite   string `json:"company_website"`
	IECCode          string `json:"IEC_code"`
	AnnualTurnover   string `json:"annual_turnover"`
	FacebookLink     string `json:"facebook_link"`
	LinkedinLink     string `json:"linkedin_link"`
	InstaLink        string `json:"insta_link"`
	City             string `json:"city"`
	State            string `json:"state"`
	Pincode          string `json:"pincode"`
	CompanyLogo      string `json:"company_logo"`
}

type KYCInfo struct {
	AadharNumber        string `json:"aadhar_number"`
	AadharFront         string `json:"aadhar_front"`
	AadharBack          string `json:"aadhar_back"`
	CompanyRegistration string `json:"company_registration"`
	CompanyPanCard      string `json:"company_pan_card"`
	GSTCertificate      string `json:"gst_certificate"`
}

type BankInfo struct {
	BankName             string `json:"bank_name"`
	BankIFSCCode         string `json:"bank_IFSC_code"`
	AccountNumber        string `json:"account_number"`
	AccountType          string `json:"account_type"`
	CancelledChequePhoto string `json:"cancelled_cheque_photo"`
}

// SellerSummary is the flat row shape GET /sellers returns.
type SellerSummary struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
	ApproveStatus string `json:"approve_status"`
	CompanyName   string `json:"company_name"`
}

// SessionUser is the cached seller identity this panel keeps between
// requests. It mirrors what the login flow persisted, refreshed in the
// background to pick up approval-status changes.
type SessionUser struct {
	ID            int64  `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	Status        string `json:"status"`
	ApproveStatus string `json:"approve_status"`
	CompanyName   string `json:"company_name"`
	City          string `json:"city"`
	State         string `json:"state"`
}

// IsApproved gates the full panel surface.
func (u *SessionUser) IsApproved() bool {
	return strings.EqualFold(strings.TrimSpace(u.ApproveStatus), "approved")
}

// MergeSummary folds freshly fetched seller fields onto the cached user,
// preferring the already-present identifying fields over fetched ones.
func (u *SessionUser) MergeSummary(s *SellerSummary) {
	if u.ID == 0 {
		u.ID = s.ID
	}
	if u.Email == "" {
		u.Email = s.Email
	}
	if u.Name == "" {
		u.Name = s.Name
	}
	if s.Mobile != "" {
		u.Mobile = s.Mobile
	}
	if s.CompanyName != "" {
		u.CompanyName = s.CompanyName
	}
	u.ApproveStatus = s.ApproveStatus
}

// UserFromProfile builds the session identity from a full profile fetch,
// keeping the given identifiers when the profile omits them.
func UserFromProfile(p *SellerProfile, id int64, email, name string) SessionUser {
	u := SessionUser{
		ID:            p.Seller.ID,
		Email:         p.Seller.Email,
		Name:          p.Seller.Name,
		Mobile:        p.Seller.Mobile,
		Status:        p.Seller.Status,
		ApproveStatus: p.Seller.ApproveStatus,
		CompanyName:   p.Company.CompanyName,
		City:          p.Company.City,
		State:         p.Company.State,
	}
	if u.ID == 0 {
		u.ID = id
	}
	if u.Email == "" {
		u.Email = email
	}
	if u.Name == "" {
		u.Name = name
	}
	if u.Name == "" {
		u.Name = u.Email
	}
	return u
}
