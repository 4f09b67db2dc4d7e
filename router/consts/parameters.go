package consts

const (
	ParamPinID   = "pinID"
	ParamUserID  = "userID"
	ParamGroupID = "groupID"
)
