//go:build !debug

package pool

import "code.linenisgreat.com/spackle/go/src/_/interfaces"

func wrapRepoolDebug(repool interfaces.FuncRepool) interfaces.FuncRepool {
	return repool
}
