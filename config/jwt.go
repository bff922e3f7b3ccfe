package config

import "time"

var JWTSecret []byte
var JWTExpiration time.Duration

func InitJWT() {
	JWTSecret = []byte(GlobalConfig.JWT.Secret)
	hours := GlobalConfig.JWT.ExpireHours
	if hours <= 0 {
		hours = 24
	}
	JWTExpiration = time.Duration(hours) * time.Hour
}
