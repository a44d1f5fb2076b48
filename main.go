// Command ginstats reports run-to-run variance of GIN sampler results.
// CLI handling lives in cmd/.
package main

import (
	"github.com/gin-gi/ginstats/cmd"
)

func main() {
	cmd.Execute()
}
