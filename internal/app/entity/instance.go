package entity

type InstanceID string

func (id InstanceID) String() string {
	return string(id)
}

func (id InstanceID) Valid() bool {
	return len(id) != 0
}

type AppInstance struct {
	InstanceID      InstanceID
	VendorProductID string
	BillingCycle    string
	Premium         bool
}

type InstanceCtxKey struct{}

type InstanceCtx struct {
	InstanceID InstanceID
	StatusCode int
}

func CreateInstanceCtx(instanceID InstanceID, code int) InstanceCtx {
	return InstanceCtx{
		InstanceID: instanceID,
		StatusCode: code,
	}
}
