package user

import (
	"myple/internal/common"
)

var minLenPwd = 6

func validateUser(u User) error {
	if err := validateName(u.Name); err != nil {
		return err
	}
	if err := validatePwd(u.Password, u.RepeatPWD); err != nil {
		return err
	}
	if err := validateGender(u.Gender); err != nil {
		return err
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return common.InvalidArgumentError(nil, "name is required")
	}
	if len(name) < 2 {
		return common.InvalidArgumentError(nil, "name is too short")
	}
	return nil
}

func validatePwd(pwd, repeatPWD string) error {
	if pwd == "" {
		return common.InvalidArgumentError(nil, "password cannot be empty")
	}
	if len(pwd) < minLenPwd {
		return common.InvalidArgumentError(nil, "password is too short")
	}
	if pwd != repeatPWD {
		return common.InvalidArgumentError(nil, "passwords do not match")
	}
	return nil
}

func validateGender(g Gender) error {
	if g != Male && g != Female {
		return common.InvalidArgumentError(nil, "gender is required")
	}
	return nil
}
