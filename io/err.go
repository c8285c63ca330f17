package io

import (
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelClosed = translate.NewError("channel closed")
)
