package model

type AppInstanceResponse struct {
	Instance VendorInstance `json:"instance"`
}

type VendorInstance struct {
	InstanceID  string             `json:"instanceId"`
	IsFree      bool               `json:"isFree"`
	Billing     *VendorBillingPlan `json:"billing,omitempty"`
	SiteDisplay string             `json:"siteDisplayName,omitempty"`
}

type VendorBillingPlan struct {
	PackageName  string `json:"packageName,omitempty"`
	BillingCycle string `json:"billingCycle,omitempty"`
}
