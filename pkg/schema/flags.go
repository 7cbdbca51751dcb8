package schema

// Boolean node state is packed into a 32-bit mask; each flag serializes as a
// standalone boolean field when set.
type flag uint8

const (
	flagHidden flag = iota
	flagMultiselectable
	flagRequired
	flagVisited
	flagBusy
	flagLiveAtomic
	flagModal
	flagTouchTransparent
	flagReadOnly
	flagDisabled
	flagBold
	flagItalic
	flagClipsChildren
	flagIsLineBreakingObject
	flagIsPageBreakingObject
	flagIsSpellingError
	flagIsGrammarError
	flagIsSearchMatch
	flagIsSuggestion

	numFlags
)

var flagNames = [numFlags]string{
	"hidden",
	"multiselectable",
	"required",
	"visited",
	"busy",
	"liveAtomic",
	"modal",
	"touchTransparent",
	"readOnly",
	"disabled",
	"bold",
	"italic",
	"clipsChildren",
	"isLineBreakingObject",
	"isPageBreakingObject",
	"isSpellingError",
	"isGrammarError",
	"isSearchMatch",
	"isSuggestion",
}

var flagsByName = func() map[string]flag {
	m := make(map[string]flag, numFlags)
	for i, name := range flagNames {
		m[name] = flag(i)
	}
	return m
}()

func (f flag) mask() uint32 {
	return 1 << f
}

func (n *Node) hasFlag(f flag) bool { return n.flags&f.mask() != 0 }
func (n *Node) setFlag(f flag)      { n.flags |= f.mask() }
func (n *Node) clearFlag(f flag)    { n.flags &^= f.mask() }

// IsHidden reports that the node is not rendered, for example a collapsed
// menu or an off-screen virtualized row. Hidden nodes stay in the tree so
// assistive technologies can still walk them when asked.
func (n *Node) IsHidden() bool { return n.hasFlag(flagHidden) }
func (n *Node) SetHidden()     { n.setFlag(flagHidden) }
func (n *Node) ClearHidden()   { n.clearFlag(flagHidden) }

func (n *Node) IsMultiselectable() bool { return n.hasFlag(flagMultiselectable) }
func (n *Node) SetMultiselectable()     { n.setFlag(flagMultiselectable) }
func (n *Node) ClearMultiselectable()   { n.clearFlag(flagMultiselectable) }

func (n *Node) IsRequired() bool { return n.hasFlag(flagRequired) }
func (n *Node) SetRequired()     { n.setFlag(flagRequired) }
func (n *Node) ClearRequired()   { n.clearFlag(flagRequired) }

func (n *Node) IsVisited() bool { return n.hasFlag(flagVisited) }
func (n *Node) SetVisited()     { n.setFlag(flagVisited) }
func (n *Node) ClearVisited()   { n.clearFlag(flagVisited) }

func (n *Node) IsBusy() bool { return n.hasFlag(flagBusy) }
func (n *Node) SetBusy()     { n.setFlag(flagBusy) }
func (n *Node) ClearBusy()   { n.clearFlag(flagBusy) }

func (n *Node) IsLiveAtomic() bool { return n.hasFlag(flagLiveAtomic) }
func (n *Node) SetLiveAtomic()     { n.setFlag(flagLiveAtomic) }
func (n *Node) ClearLiveAtomic()   { n.clearFlag(flagLiveAtomic) }

func (n *Node) IsModal() bool { return n.hasFlag(flagModal) }
func (n *Node) SetModal()     { n.setFlag(flagModal) }
func (n *Node) ClearModal()   { n.clearFlag(flagModal) }

func (n *Node) IsTouchTransparent() bool { return n.hasFlag(flagTouchTransparent) }
func (n *Node) SetTouchTransparent()     { n.setFlag(flagTouchTransparent) }
func (n *Node) ClearTouchTransparent()   { n.clearFlag(flagTouchTransparent) }

func (n *Node) IsReadOnly() bool { return n.hasFlag(flagReadOnly) }
func (n *Node) SetReadOnly()     { n.setFlag(flagReadOnly) }
func (n *Node) ClearReadOnly()   { n.clearFlag(flagReadOnly) }

func (n *Node) IsDisabled() bool { return n.hasFlag(flagDisabled) }
func (n *Node) SetDisabled()     { n.setFlag(flagDisabled) }
func (n *Node) ClearDisabled()   { n.clearFlag(flagDisabled) }

func (n *Node) IsBold() bool { return n.hasFlag(flagBold) }
func (n *Node) SetBold()     { n.setFlag(flagBold) }
func (n *Node) ClearBold()   { n.clearFlag(flagBold) }

func (n *Node) IsItalic() bool { return n.hasFlag(flagItalic) }
func (n *Node) SetItalic()     { n.setFlag(flagItalic) }
func (n *Node) ClearItalic()   { n.clearFlag(flagItalic) }

func (n *Node) ClipsChildren() bool { return n.hasFlag(flagClipsChildren) }
func (n *Node) SetClipsChildren()   { n.setFlag(flagClipsChildren) }
func (n *Node) ClearClipsChildren() { n.clearFlag(flagClipsChildren) }

func (n *Node) IsLineBreakingObject() bool { return n.hasFlag(flagIsLineBreakingObject) }
func (n *Node) SetIsLineBreakingObject()   { n.setFlag(flagIsLineBreakingObject) }
func (n *Node) ClearIsLineBreakingObject() { n.clearFlag(flagIsLineBreakingObject) }

func (n *Node) IsPageBreakingObject() bool { return n.hasFlag(flagIsPageBreakingObject) }
func (n *Node) SetIsPageBreakingObject()   { n.setFlag(flagIsPageBreakingObject) }
func (n *Node) ClearIsPageBreakingObject() { n.clearFlag(flagIsPageBreakingObject) }

func (n *Node) IsSpellingError() bool { return n.hasFlag(flagIsSpellingError) }
func (n *Node) SetIsSpellingError()   { n.setFlag(flagIsSpellingError) }
func (n *Node) ClearIsSpellingError() { n.clearFlag(flagIsSpellingError) }

func (n *Node) IsGrammarError() bool { return n.hasFlag(flagIsGrammarError) }
func (n *Node) SetIsGrammarError()   { n.setFlag(flagIsGrammarError) }
func (n *Node) ClearIsGrammarError() { n.clearFlag(flagIsGrammarError) }

func (n *Node) IsSearchMatch() bool { return n.hasFlag(flagIsSearchMatch) }
func (n *Node) SetIsSearchMatch()   { n.setFlag(flagIsSearchMatch) }
func (n *Node) ClearIsSearchMatch() { n.clearFlag(flagIsSearchMatch) }

func (n *Node) IsSuggestion() bool { return n.hasFlag(flagIsSuggestion) }
func (n *Node) SetIsSuggestion()   { n.setFlag(flagIsSuggestion) }
func (n *Node) ClearIsSuggestion() { n.clearFlag(flagIsSuggestion) }
