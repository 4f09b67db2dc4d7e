package validator

import (
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// EmailRule メールアドレスバリデーションルール
var EmailRule = []vd.Rule{
	is.EmailFormat,
	vd.RuneLength(3, 255),
}

// EmailRuleRequired メールアドレスバリデーションルール with Required
var EmailRuleRequired = append([]vd.Rule{
	vd.Required,
}, EmailRule...)

// PasswordRule パスワードバリデーションルール
var PasswordRule = []vd.Rule{
	is.PrintableASCII,
	vd.RuneLength(1, 72),
}

// PasswordRuleRequired パスワードバリデーションルール with Required
var PasswordRuleRequired = append([]vd.Rule{
	vd.Required,
}, PasswordRule...)

// NicknameRule ニックネームバリデーションルール
var NicknameRule = []vd.Rule{
	vd.RuneLength(1, 32),
}

// NicknameRuleRequired ニックネームバリデーションルール with Required
var NicknameRuleRequired = append([]vd.Rule{
	vd.Required,
}, NicknameRule...)

// GroupNameRule グループ名バリデーションルール
var GroupNameRule = []vd.Rule{
	vd.RuneLength(1, 30),
}

// GroupNameRuleRequired グループ名バリデーションルール with Required
var GroupNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, GroupNameRule...)

// PinNameRule ピン名バリデーションルール
var PinNameRule = []vd.Rule{
	vd.RuneLength(1, 100),
}

// PinNameRuleRequired ピン名バリデーションルール with Required
var PinNameRuleRequired = append([]vd.Rule{
	vd.Required,
}, PinNameRule...)

// AddressRule 住所バリデーションルール
var AddressRule = []vd.Rule{
	vd.RuneLength(0, 255),
}

// PositiveID 正のIDバリデーションルール
var PositiveID = vd.Min(1).Error("must be a positive id")
