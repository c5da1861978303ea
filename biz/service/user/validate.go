package user

import (
	"fmt"
	"strings"

	"stock_tracker/be/biz/model/errs"
)

const (
	passwordMin = 10
	passwordMax = 72
	usernameMin = 1
)

const (
	msgMissingField  = "Missing field"
	msgNotString     = "Incorrect field type: expected string"
	msgNotTrimmed    = "Cannot start or end with whitespace"
	fmtAtLeastChars  = "Must be at least %d characters long"
	fmtAtMostChars   = "Must be at most %d characters long"
	profileFieldName = "user"
)

// RegistrationInput is the validated, normalized registration request.
// FirstName and LastName are trimmed; username and password are stored as
// sent, since the whitespace rule has already rejected padded values.
type RegistrationInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
}

// registrationRule is one named check over the decoded request body. Rules
// run in order and the first failure wins; violations are results, not
// exceptions.
type registrationRule struct {
	name  string
	check func(body map[string]any) errs.Error
}

func registrationRules() []registrationRule {
	return []registrationRule{
		{name: "required fields", check: checkRequired},
		{name: "string fields", check: checkStringType},
		{name: "trimmed fields", check: checkTrimmed},
		{name: "sized fields", check: checkSized},
	}
}

// ValidateRegistration runs the rule pipeline and returns either the
// normalized input or the first structured failure.
func ValidateRegistration(body map[string]any) (*RegistrationInput, errs.Error) {
	for _, rule := range registrationRules() {
		if bizErr := rule.check(body); bizErr != nil {
			return nil, bizErr
		}
	}

	// 校验通过后类型断言一定成功
	in := &RegistrationInput{
		Username: body["username"].(string),
		Password: body["password"].(string),
	}
	in.FirstName = strings.TrimSpace(profileField(body, "firstName"))
	in.LastName = strings.TrimSpace(profileField(body, "lastName"))
	return in, nil
}

func checkRequired(body map[string]any) errs.Error {
	for _, field := range []string{"username", "password"} {
		if _, ok := body[field]; !ok {
			return errs.Validation(msgMissingField).At(field)
		}
	}
	return nil
}

func checkStringType(body map[string]any) errs.Error {
	for _, field := range []string{"username", "password"} {
		if _, ok := body[field].(string); !ok {
			return errs.Validation(msgNotString).At(field)
		}
	}

	// profile来自嵌套的user对象;类型错误按原接口的约定报在user上
	if raw, ok := body[profileFieldName]; ok {
		profile, ok := raw.(map[string]any)
		if !ok {
			return errs.Validation(msgNotString).At(profileFieldName)
		}
		for _, field := range []string{"firstName", "lastName"} {
			if v, ok := profile[field]; ok {
				if _, ok := v.(string); !ok {
					return errs.Validation(msgNotString).At(profileFieldName)
				}
			}
		}
	}
	return nil
}

func checkTrimmed(body map[string]any) errs.Error {
	for _, field := range []string{"username", "password"} {
		v, _ := body[field].(string)
		if v != strings.TrimSpace(v) {
			return errs.Validation(msgNotTrimmed).At(field)
		}
	}
	return nil
}

func checkSized(body map[string]any) errs.Error {
	username, _ := body["username"].(string)
	if len(username) < usernameMin {
		return errs.Validation(fmt.Sprintf(fmtAtLeastChars, usernameMin)).At("username")
	}

	password, _ := body["password"].(string)
	if len(password) < passwordMin {
		return errs.Validation(fmt.Sprintf(fmtAtLeastChars, passwordMin)).At("password")
	}
	if len(password) > passwordMax {
		return errs.Validation(fmt.Sprintf(fmtAtMostChars, passwordMax)).At("password")
	}
	return nil
}

func profileField(body map[string]any, field string) string {
	profile, _ := body[profileFieldName].(map[string]any)
	v, _ := profile[field].(string)
	return v
}
