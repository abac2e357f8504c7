// Package syncmap offers a small generic map guarded by a sync.RWMutex with
// deterministic, key ordered listing.
package syncmap
