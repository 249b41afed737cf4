package logger

import "go.uber.org/zap"

func ProvideLoggerMiddleware() *Middleware { return New(NewLog("http-access.log")) }
func ProvideLogger() *zap.Logger           { return NewLog("system.log") }
