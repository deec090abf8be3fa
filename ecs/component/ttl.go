package component

// TTL is a time-to-live. The TTL system destroys the entity once Remaining
// seconds have elapsed.
type TTL struct {
	Remaining float64
}

var TTLComponent = NewComponent[TTL]()
