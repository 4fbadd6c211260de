package handlers

import (
	"net/http"

	"warung-pos-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	seq := statemachine.Sequence()
	transitions := []gin.H{}
	for i := 0; i < len(seq)-1; i++ {
		transitions = append(transitions, gin.H{"from": seq[i], "to": seq[i+1]})
	}
	c.JSON(http.StatusOK, gin.H{
		"sequence":        seq,
		"transitions":     transitions,
		"terminal_states": []string{"completed"},
		"notes": []string{
			"Transitions move one step forward only",
			"Any active order may be paid directly (completion via payment)",
			"Only pending orders may be cancelled (hard delete)",
		},
		"description": "Restaurant POS Order Lifecycle State Machine",
	})
}
