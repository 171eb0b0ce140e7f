package testutil

// Item is an element whose construction and copy are tracked and can fail.
// It has no Mover, so moving it never fails.
type Item struct {
	ID    uint32
	Value int
}

// NewItem constructs a tracked Item holding value.
func NewItem(value int) (Item, error) {
	id, err := Default.acquire(FaultConstruct)
	if err != nil {
		return Item{}, err
	}
	return Item{ID: id, Value: value}, nil
}

func (it *Item) Init() error {
	id, err := Default.acquire(FaultConstruct)
	if err != nil {
		return err
	}
	it.ID = id
	return nil
}

func (it Item) Clone() (Item, error) {
	id, err := Default.acquire(FaultCopy)
	if err != nil {
		return Item{}, err
	}
	return Item{ID: id, Value: it.Value}, nil
}

func (it *Item) Destroy() {
	Default.release(it.ID)
	it.ID = 0
}

// FragileItem is an Item whose move can fail as well. Vectors relocate it
// by copy.
type FragileItem struct {
	ID    uint32
	Value int
	Moved bool
}

// NewFragileItem constructs a tracked FragileItem holding value.
func NewFragileItem(value int) (FragileItem, error) {
	id, err := Default.acquire(FaultConstruct)
	if err != nil {
		return FragileItem{}, err
	}
	return FragileItem{ID: id, Value: value}, nil
}

func (it *FragileItem) Init() error {
	id, err := Default.acquire(FaultConstruct)
	if err != nil {
		return err
	}
	it.ID = id
	return nil
}

func (it FragileItem) Clone() (FragileItem, error) {
	id, err := Default.acquire(FaultCopy)
	if err != nil {
		return FragileItem{}, err
	}
	return FragileItem{ID: id, Value: it.Value}, nil
}

func (it *FragileItem) MoveOut() (FragileItem, error) {
	id, err := Default.acquire(FaultMove)
	if err != nil {
		return FragileItem{}, err
	}
	out := FragileItem{ID: id, Value: it.Value}
	it.Value = 0
	it.Moved = true
	return out, nil
}

func (it *FragileItem) Destroy() {
	Default.release(it.ID)
	it.ID = 0
}

// MoveOnlyItem cannot be copied and its move can fail. Vectors relocate it
// by move and move it back on failure.
type MoveOnlyItem struct {
	ID    uint32
	Value int
	Moved bool
}

// NewMoveOnlyItem constructs a tracked MoveOnlyItem holding value.
func NewMoveOnlyItem(value int) (MoveOnlyItem, error) {
	id, err := Default.acquire(FaultConstruct)
	if err != nil {
		return MoveOnlyItem{}, err
	}
	return MoveOnlyItem{ID: id, Value: value}, nil
}

func (MoveOnlyItem) MoveOnly() {}

func (it *MoveOnlyItem) Init() error {
	id, err := Default.acquire(FaultConstruct)
	if err != nil {
		return err
	}
	it.ID = id
	return nil
}

func (it *MoveOnlyItem) MoveOut() (MoveOnlyItem, error) {
	id, err := Default.acquire(FaultMove)
	if err != nil {
		return MoveOnlyItem{}, err
	}
	out := MoveOnlyItem{ID: id, Value: it.Value}
	it.Value = 0
	it.Moved = true
	return out, nil
}

func (it *MoveOnlyItem) Destroy() {
	Default.release(it.ID)
	it.ID = 0
}
