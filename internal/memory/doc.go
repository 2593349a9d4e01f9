// Package memory configures the Go runtime memory limit in containerized
// environments.
//
// GOMAXPROCS follows cgroup CPU limits automatically; GOMEMLIMIT does not.
// A collect request over a large tree holds every discovered path, the
// visited set and the pending directory listings in memory at once, so a
// serve process running close to its container limit should let the garbage
// collector know where that limit is.
//
// # Environment Variables
//
//   - GOMEMLIMIT: standard Go variable, takes precedence when set
//   - MEMORY_LIMIT: container memory limit in bytes
//   - MEMORY_RATIO: share of MEMORY_LIMIT for the Go heap, in (0.0, 1.0]
//
// # Kubernetes Configuration
//
//	env:
//	- name: MEMORY_LIMIT
//	  valueFrom:
//	    resourceFieldRef:
//	      resource: limits.memory
//
// GOMEMLIMIT is a soft limit: the runtime collects more aggressively as the
// heap approaches it but may exceed it.
package memory
