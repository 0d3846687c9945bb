package bind_group_provider

// BufferWrite is one pending GPU buffer upload: Data goes to the buffer at
// Binding on Provider, starting at Offset bytes. The renderer batches a
// slice of these per frame so the camera uniform and any re-sorted splat
// clouds land in a single queue submission.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
