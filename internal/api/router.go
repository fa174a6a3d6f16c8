// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"github.com/alvinbaena/pwd-strength/pkg/cracktime"
	"github.com/alvinbaena/pwd-strength/pkg/wordlist"
	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// requestID tags every request with an id, reusing the caller's if sent.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// NewRouter builds the API handler. Request bodies are never logged, only
// the request line and status.
func NewRouter(scenarios []cracktime.Scenario, words *wordlist.Loader) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(logger.SetLogger(logger.WithLogger(func(c *gin.Context, z zerolog.Logger) zerolog.Logger {
		return zerolog.New(gin.DefaultWriter).With().
			Timestamp().
			Str("request_id", c.GetString("request_id")).
			Logger()
	})))

	v1 := router.Group("/v1")
	RegisterAnalyzeApi(v1, scenarios, words)

	return router
}
