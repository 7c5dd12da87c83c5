package service

import "errors"

var (
	// ErrCredentialsTaken 注册或改邮箱时撞到已有 email
	ErrCredentialsTaken = errors.New("credentials taken")
	// ErrInvalidCredentials 账号不存在和密码错误一律返回它，不区分
	ErrInvalidCredentials = errors.New("credentials incorrect")
	// ErrAccessDenied 书签不存在或不属于调用者
	ErrAccessDenied = errors.New("access denied")
)
