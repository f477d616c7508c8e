package logger

import (
	"fmt"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelError = "error"
)

var level = LevelInfo

func GetLevel() string {
	return level
}

func SetLevel(lvl string) {
	if lvl == "" {
		level = LevelDebug
	} else {
		level = lvl
	}
}

func Debug(args ...interface{}) {
	if level == LevelDebug {
		fmt.Println(args...)
	}
}

func Info(args ...interface{}) {
	if level != LevelError {
		fmt.Println(args...)
	}
}

func Error(args ...interface{}) {
	fmt.Println(args...)
}

func Debugf(template string, args ...interface{}) {
	if level == LevelDebug {
		fmt.Printf(template, args...)
	}
}

func Infof(template string, args ...interface{}) {
	if level != LevelError {
		fmt.Printf(template, args...)
	}
}

func Errorf(template string, args ...interface{}) {
	fmt.Printf(template, args...)
}
