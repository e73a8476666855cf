package winner

// Log is the append-only winner history in arrival order.
type Log struct {
	records []Record
}

func NewLog(records []Record) *Log {
	return &Log{records: append([]Record(nil), records...)}
}

func (l *Log) Append(r Record) {
	l.records = append(l.records, r)
}

// Last returns the most recent record, globally.
func (l *Log) Last() (Record, bool) {
	if len(l.records) == 0 {
		return Record{}, false
	}
	return l.records[len(l.records)-1], true
}

func (l *Log) Len() int {
	return len(l.records)
}

// Records returns a copy in arrival order.
func (l *Log) Records() []Record {
	return append([]Record(nil), l.records...)
}

// Clear drops the whole history. Only the admin history reset calls this.
func (l *Log) Clear() {
	l.records = nil
}

// Page returns one newest-first page. Pages are 1-based; a page past the end
// is empty.
func (l *Log) Page(page, size int) (entries []Record, totalPages int) {
	if size <= 0 {
		size = 1
	}
	if page < 1 {
		page = 1
	}
	n := len(l.records)
	totalPages = (n + size - 1) / size

	start := (page - 1) * size
	if start >= n {
		return []Record{}, totalPages
	}
	end := min(start+size, n)

	entries = make([]Record, 0, end-start)
	for i := start; i < end; i++ {
		entries = append(entries, l.records[n-1-i])
	}
	return entries, totalPages
}
