package modkit

import "pcaobdash/internal/modkit/module"

// Module is the contract api.Mount drives: routes under a prefix plus a port set
type Module = module.Module
