package utils

import "github.com/gin-gonic/gin"

// JSONOk merges extra into a {"success": true} envelope, matching the response
// shape the frontend already consumes.
func JSONOk(c *gin.Context, code int, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(code, body)
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}
