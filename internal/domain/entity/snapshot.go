package entity

// Snapshot is the whole schedule state: guild buckets keyed by guild id and
// direct-message buckets keyed by user id.
type Snapshot struct {
	Guild         map[string]*Bucket
	DirectMessage map[string]*Bucket
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Guild:         make(map[string]*Bucket),
		DirectMessage: make(map[string]*Bucket),
	}
}

func (s *Snapshot) group(kind OwnerKind) map[string]*Bucket {
	if kind == Guild {
		return s.Guild
	}
	return s.DirectMessage
}

// Bucket returns the bucket for key, creating an empty one on first access.
func (s *Snapshot) Bucket(key BucketKey) *Bucket {
	group := s.group(key.Kind)
	b, ok := group[key.OwnerID]
	if !ok {
		b = &Bucket{}
		group[key.OwnerID] = b
	}
	return b
}

// Lookup returns the bucket for key without creating it.
func (s *Snapshot) Lookup(key BucketKey) (*Bucket, bool) {
	b, ok := s.group(key.Kind)[key.OwnerID]
	return b, ok
}

// Put replaces the bucket stored under key.
func (s *Snapshot) Put(key BucketKey, b *Bucket) {
	s.group(key.Kind)[key.OwnerID] = b
}

// Each calls fn for every bucket, guild buckets first.
func (s *Snapshot) Each(fn func(key BucketKey, b *Bucket)) {
	for id, b := range s.Guild {
		fn(GuildKey(id), b)
	}
	for id, b := range s.DirectMessage {
		fn(DirectKey(id), b)
	}
}

// Len returns the total number of entries across all buckets.
func (s *Snapshot) Len() int {
	n := 0
	s.Each(func(_ BucketKey, b *Bucket) { n += len(b.Entries) })
	return n
}
