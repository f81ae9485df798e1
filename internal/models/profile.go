package models

// ProfileForm is the flat editable shape the profile screen round-trips.
// Keys match what PATCH /seller/{id} accepts as multipart fields.
type ProfileForm struct {
	// seller
	Name                string `json:"name" form:"name"`
	Mobile              string `json:"mobile" form:"mobile"`
	Email               string `json:"email" form:"email"`
	Status              string `json:"status" form:"status"`
	ApproveStatus       string `json:"approve_status" form:"approve_status"`
	DeviceToken         string `json:"device_token" form:"device_token"`
	Subscription        string `json:"subscription" form:"subscription"`
	CurrentPackageID    string `json:"current_package_id" form:"current_package_id"`
	CurrentPackageStart string `json:"current_package_start" form:"current_package_start"`
	CurrentPackageEnd   string `json:"current_package_end" form:"current_package_end"`

	// company
	CompanyName      string `json:"company_name" form:"company_name"`
	CompanyType      string `json:"company_type" form:"company_type"`
	CompanyGSTNumber string `json:"company_GST_number" form:"company_GST_number"`
	CompanyWebsite   string `json:"company_website" form:"company_website"`
	IECCode          string `json:"IEC_code" form:"IEC_code"`
	AnnualTurnover   string `json:"annual_turnover" form:"annual_turnover"`
	FacebookLink     string `json:"facebook_link" form:"facebook_link"`
	LinkedinLink     string `json:"linkedin_link" form:"linkedin_link"`
	InstaLink        string `json:"insta_link" form:"insta_link"`
	City             string `json:"city" form:"city"`
	State            string `json:"state" form:"state"`
	Pincode          string `json:"pincode" form:"pincode"`
	CompanyLogo      string `json:"company_logo" form:"company_logo"`

	// kyc
	AadharNumber        string `json:"aadhar_number" form:"aadhar_number"`
	AadharFront         string `json:"aadhar_front" form:"aadhar_front"`
	AadharBack          string `json:"aadhar_back" form:"aadhar_back"`
	CompanyRegistration string `json:"company_registration" form:"company_registration"`
	CompanyPanCard      string `json:"company_pan_card" form:"company_pan_card"`
	GSTCertificate      string `json:"gst_certificate" form:"gst_certificate"`

	// bank
	BankName             string `json:"bank_name" form:"bank_name"`
	BankIFSCCode         string `json:"bank_IFSC_code" form:"bank_IFSC_code"`
	AccountNumber        string `json:"account_number" form:"account_number"`
	AccountType          string `json:"account_type" form:"account_type"`
	CancelledChequePhoto string `json:"cancelled_cheque_photo" form:"cancelled_cheque_photo"`
}

// FileAttachment is a file part attached to the profile save only when the
// operator actually changed it.
type FileAttachment struct {
	Field    string
	Filename string
	Data     []byte
}

// FlattenProfile maps the nested remote shape into the flat form shape.
func FlattenProfile(p *SellerProfile) ProfileForm {
	return ProfileForm{
		Name:                p.Seller.Name,
		Mobile:              p.Seller.Mobile,
		Email:               p.Seller.Email,
		Status:              p.Seller.Status,
		ApproveStatus:       p.Seller.ApproveStatus,
		DeviceToken:         p.Seller.DeviceToken,
		Subscription:        p.Seller.Subscription,
		CurrentPackageID:    p.Seller.CurrentPackageID,
		CurrentPackageStart: p.Seller.CurrentPackageStart,
		CurrentPackageEnd:   p.Seller.CurrentPackageEnd,

		CompanyName:      p.Company.CompanyName,
		CompanyType:      p.Company.CompanyType,
		CompanyGSTNumber: p.Company.CompanyGSTNumber,
		CompanyWebsite:   p.Company.CompanyWebsite,
		IECCode:          p.Company.IECCode,
		AnnualTurnover:   p.Company.AnnualTurnover,
		FacebookLink:     p.Company.FacebookLink,
		LinkedinLink:     p.Company.LinkedinLink,
		InstaLink:        p.Company.InstaLink,
		City:             p.Company.City,
		State:            p.Company.State,
		Pincode:          p.Company.Pincode,
		CompanyLogo:      p.Company.CompanyLogo,

		AadharNumber:        p.KYC.AadharNumber,
		AadharFront:         p.KYC.AadharFront,
		AadharBack:          p.KYC.AadharBack,
		CompanyRegistration: p.KYC.CompanyRegistration,
		CompanyPanCard:      p.KYC.CompanyPanCard,
		GSTCertificate:      p.KYC.GSTCertificate,

		BankName:             p.Bank.BankName,
		BankIFSCCode:         p.Bank.BankIFSCCode,
		AccountNumber:        p.Bank.AccountNumber,
		AccountType:          p.Bank.AccountType,
		CancelledChequePhoto: p.Bank.CancelledChequePhoto,
	}
}

// TextFields lists every editable text field under its flat key. File-path
// fields are excluded; those travel as file parts when changed.
func (f *ProfileForm) TextFields() map[string]string {
	return map[string]string{
		"name":                  f.Name,
		"mobile":                f.Mobile,
		"email":                 f.Email,
		"status":                f.Status,
		"approve_status":        f.ApproveStatus,
		"device_token":          f.DeviceToken,
		"subscription":          f.Subscription,
		"current_package_id":    f.CurrentPackageID,
		"current_package_start": f.CurrentPackageStart,
		"current_package_end":   f.CurrentPackageEnd,
		"company_name":          f.CompanyName,
		"company_type":          f.CompanyType,
		"company_GST_number":    f.CompanyGSTNumber,
		"company_website":       f.CompanyWebsite,
		"IEC_code":              f.IECCode,
		"annual_turnover":       f.AnnualTurnover,
		"facebook_link":         f.FacebookLink,
		"linkedin_link":         f.LinkedinLink,
		"insta_link":            f.InstaLink,
		"city":                  f.City,
		"state":                 f.State,
		"pincode":               f.Pincode,
		"aadhar_number":         f.AadharNumber,
		"bank_name":             f.BankName,
		"bank_IFSC_code":        f.BankIFSCCode,
		"account_number":        f.AccountNumber,
		"account_type":          f.AccountType,
	}
}

// NestedFields duplicates a subset of the form under bracketed keys; some
// backend deployments only read the nested spelling, the rest ignore the
// extras.
func (f *ProfileForm) NestedFields() map[string]string {
	return map[string]string{
		"seller[name]":                f.Name,
		"seller[mobile]":              f.Mobile,
		"seller[email]":               f.Email,
		"company[company_name]":       f.CompanyName,
		"company[company_type]":       f.CompanyType,
		"company[company_GST_number]": f.CompanyGSTNumber,
		"kyc[aadhar_number]":          f.AadharNumber,
		"bank[bank_name]":             f.BankName,
		"bank[bank_IFSC_code]":        f.BankIFSCCode,
		"bank[account_number]":        f.AccountNumber,
		"bank[account_type]":          f.AccountType,
	}
}
