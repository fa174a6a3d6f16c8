// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"fmt"
	"github.com/alvinbaena/pwd-strength/internal/reference"
	"github.com/alvinbaena/pwd-strength/pkg/cracktime"
	"github.com/alvinbaena/pwd-strength/pkg/strength"
	"github.com/alvinbaena/pwd-strength/pkg/wordlist"
	"github.com/gin-gonic/gin"
	"net/http"
)

type analyzeApi struct {
	scenarios []cracktime.Scenario
	words     *wordlist.Loader
}

func (a *analyzeApi) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := strength.Analyze(*req.Password)
	estimates := make([]estimateResponse, 0, len(a.scenarios))
	for _, s := range a.scenarios {
		estimates = append(estimates, newEstimateResponse(s, result.EntropyBits))
	}

	c.JSON(http.StatusOK, analyzeResponse{
		Result:    result,
		Estimates: estimates,
		Reference: reference.Of(*req.Password),
	})
}

func (a *analyzeApi) estimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s, ok := cracktime.Lookup(a.scenarios, req.Scenario)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown scenario %q", req.Scenario)})
		return
	}

	c.JSON(http.StatusOK, newEstimateResponse(s, *req.Bits))
}

func (a *analyzeApi) listScenarios(c *gin.Context) {
	c.JSON(http.StatusOK, a.scenarios)
}

func (a *analyzeApi) wordList(c *gin.Context) {
	c.JSON(http.StatusOK, wordListResponse{Size: a.words.Size()})
}

// RegisterAnalyzeApi mounts the analysis endpoints on group.
func RegisterAnalyzeApi(group *gin.RouterGroup, scenarios []cracktime.Scenario, words *wordlist.Loader) {
	a := &analyzeApi{scenarios: scenarios, words: words}

	group.POST("/analyze", a.analyze)
	group.POST("/estimate", a.estimate)
	group.GET("/scenarios", a.listScenarios)
	group.GET("/wordlist", a.wordList)
}
