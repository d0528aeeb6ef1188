package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrNicknameTaken        = errors.New("nickname already taken")
	ErrEmptyNickname        = errors.New("nickname is empty")
	ErrEmptyContent         = errors.New("message content is empty")
	ErrSameUser             = errors.New("sender and receiver are the same user")
	ErrConversationNotFound = errors.New("conversation not found")
)
