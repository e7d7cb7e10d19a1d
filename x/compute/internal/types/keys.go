package types

const (
	// ModuleName is the name of the compute module
	ModuleName = "compute"

	// StoreKey is the string store representation
	StoreKey = ModuleName

	// RouterKey is the msg router key for the compute module
	RouterKey = ModuleName
)

// Type URLs of the compute messages as they appear inside a signed
// transaction body. The enclave matches on these when recovering the
// on-chain message for cross-validation.
const (
	TypeURLMsgInstantiateContract = "/secret.compute.v1beta1.MsgInstantiateContract"
	TypeURLMsgExecuteContract     = "/secret.compute.v1beta1.MsgExecuteContract"
	TypeURLMsgMigrateContract     = "/secret.compute.v1beta1.MsgMigrateContract"
	TypeURLMsgUpdateAdmin         = "/secret.compute.v1beta1.MsgUpdateAdmin"
	TypeURLMsgClearAdmin          = "/secret.compute.v1beta1.MsgClearAdmin"
)
