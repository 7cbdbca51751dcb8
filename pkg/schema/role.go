package schema

// Role describes what a node is. The enum is closed: roles outside this list
// cannot be expressed, and consumers may exhaustively switch on it. Values
// are roughly frequency-ordered; Unknown is the zero value.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleInlineTextBox
	RoleCell
	RoleStaticText
	RoleImage
	RoleLink
	RoleRow
	RoleListItem
	RoleListMarker
	RoleTreeItem
	RoleListBoxOption
	RoleMenuItem
	RoleMenuListOption
	RoleParagraph
	RoleGenericContainer
	RoleCheckBox
	RoleRadioButton
	RoleTextField
	RoleButton
	RoleDefaultButton
	RolePane
	RoleRowHeader
	RoleColumnHeader
	RoleRowGroup
	RoleList
	RoleTable
	RoleLayoutTableCell
	RoleLayoutTableRow
	RoleLayoutTable
	RoleSwitch
	RoleMenu
	RoleMultilineTextField
	RoleSearchInput
	RoleDateInput
	RoleDateTimeInput
	RoleWeekInput
	RoleMonthInput
	RoleTimeInput
	RoleEmailInput
	RoleNumberInput
	RolePasswordInput
	RolePhoneNumberInput
	RoleURLInput
	RoleAbbr
	RoleAlert
	RoleAlertDialog
	RoleApplication
	RoleArticle
	RoleAudio
	RoleBanner
	RoleBlockquote
	RoleCanvas
	RoleCaption
	RoleCaret
	RoleCode
	RoleColorWell
	RoleComboBox
	RoleEditableComboBox
	RoleComplementary
	RoleComment
	RoleContentDeletion
	RoleContentInsertion
	RoleContentInfo
	RoleDefinition
	RoleDescriptionList
	RoleDescriptionListDetail
	RoleDescriptionListTerm
	RoleDetails
	RoleDialog
	RoleDirectory
	RoleDisclosureTriangle
	RoleDocument
	RoleEmbeddedObject
	RoleEmphasis
	RoleFeed
	RoleFigureCaption
	RoleFigure
	RoleFooter
	RoleFooterAsNonLandmark
	RoleForm
	RoleGrid
	RoleGroup
	RoleHeader
	RoleHeaderAsNonLandmark
	RoleHeading
	RoleIframe
	RoleIframePresentational
	RoleImeCandidate
	RoleKeyboard
	RoleLegend
	RoleLineBreak
	RoleListBox
	RoleLog
	RoleMain
	RoleMark
	RoleMarquee
	RoleMath
	RoleMenuBar
	RoleMenuItemCheckBox
	RoleMenuItemRadio
	RoleMenuListPopup
	RoleMeter
	RoleNavigation
	RoleNote
	RolePluginObject
	RolePortal
	RolePre
	RoleProgressIndicator
	RoleRadioGroup
	RoleRegion
	RoleRootWebArea
	RoleRuby
	RoleRubyAnnotation
	RoleScrollBar
	RoleScrollView
	RoleSearch
	RoleSection
	RoleSlider
	RoleSpinButton
	RoleSplitter
	RoleStatus
	RoleStrong
	RoleSuggestion
	RoleSvgRoot
	RoleTab
	RoleTabList
	RoleTabPanel
	RoleTerm
	RoleTime
	RoleTimer
	RoleTitleBar
	RoleToolbar
	RoleTooltip
	RoleTree
	RoleTreeGrid
	RoleVideo
	RoleWebView
	RoleWindow
	RolePdfActionableHighlight
	RolePdfRoot
	RoleGraphicsDocument
	RoleGraphicsObject
	RoleGraphicsSymbol
	RoleDocAbstract
	RoleDocAcknowledgements
	RoleDocAfterword
	RoleDocAppendix
	RoleDocBackLink
	RoleDocBiblioEntry
	RoleDocBibliography
	RoleDocBiblioRef
	RoleDocChapter
	RoleDocColophon
	RoleDocConclusion
	RoleDocCover
	RoleDocCredit
	RoleDocCredits
	RoleDocDedication
	RoleDocEndnote
	RoleDocEndnotes
	RoleDocEpigraph
	RoleDocEpilogue
	RoleDocErrata
	RoleDocExample
	RoleDocFootnote
	RoleDocForeword
	RoleDocGlossary
	RoleDocGlossRef
	RoleDocIndex
	RoleDocIntroduction
	RoleDocNoteRef
	RoleDocNotice
	RoleDocPageBreak
	RoleDocPageFooter
	RoleDocPageHeader
	RoleDocPageList
	RoleDocPart
	RoleDocPreface
	RoleDocPrologue
	RoleDocPullquote
	RoleDocQna
	RoleDocSubtitle
	RoleDocTip
	RoleDocToc
	RoleListGrid
	RoleTerminal

	numRoles
)

var roleNames = [numRoles]string{
	"unknown",
	"inlineTextBox",
	"cell",
	"staticText",
	"image",
	"link",
	"row",
	"listItem",
	"listMarker",
	"treeItem",
	"listBoxOption",
	"menuItem",
	"menuListOption",
	"paragraph",
	"genericContainer",
	"checkBox",
	"radioButton",
	"textField",
	"button",
	"defaultButton",
	"pane",
	"rowHeader",
	"columnHeader",
	"rowGroup",
	"list",
	"table",
	"layoutTableCell",
	"layoutTableRow",
	"layoutTable",
	"switch",
	"menu",
	"multilineTextField",
	"searchInput",
	"dateInput",
	"dateTimeInput",
	"weekInput",
	"monthInput",
	"timeInput",
	"emailInput",
	"numberInput",
	"passwordInput",
	"phoneNumberInput",
	"urlInput",
	"abbr",
	"alert",
	"alertDialog",
	"application",
	"article",
	"audio",
	"banner",
	"blockquote",
	"canvas",
	"caption",
	"caret",
	"code",
	"colorWell",
	"comboBox",
	"editableComboBox",
	"complementary",
	"comment",
	"contentDeletion",
	"contentInsertion",
	"contentInfo",
	"definition",
	"descriptionList",
	"descriptionListDetail",
	"descriptionListTerm",
	"details",
	"dialog",
	"directory",
	"disclosureTriangle",
	"document",
	"embeddedObject",
	"emphasis",
	"feed",
	"figureCaption",
	"figure",
	"footer",
	"footerAsNonLandmark",
	"form",
	"grid",
	"group",
	"header",
	"headerAsNonLandmark",
	"heading",
	"iframe",
	"iframePresentational",
	"imeCandidate",
	"keyboard",
	"legend",
	"lineBreak",
	"listBox",
	"log",
	"main",
	"mark",
	"marquee",
	"math",
	"menuBar",
	"menuItemCheckBox",
	"menuItemRadio",
	"menuListPopup",
	"meter",
	"navigation",
	"note",
	"pluginObject",
	"portal",
	"pre",
	"progressIndicator",
	"radioGroup",
	"region",
	"rootWebArea",
	"ruby",
	"rubyAnnotation",
	"scrollBar",
	"scrollView",
	"search",
	"section",
	"slider",
	"spinButton",
	"splitter",
	"status",
	"strong",
	"suggestion",
	"svgRoot",
	"tab",
	"tabList",
	"tabPanel",
	"term",
	"time",
	"timer",
	"titleBar",
	"toolbar",
	"tooltip",
	"tree",
	"treeGrid",
	"video",
	"webView",
	"window",
	"pdfActionableHighlight",
	"pdfRoot",
	"graphicsDocument",
	"graphicsObject",
	"graphicsSymbol",
	"docAbstract",
	"docAcknowledgements",
	"docAfterword",
	"docAppendix",
	"docBackLink",
	"docBiblioEntry",
	"docBibliography",
	"docBiblioRef",
	"docChapter",
	"docColophon",
	"docConclusion",
	"docCover",
	"docCredit",
	"docCredits",
	"docDedication",
	"docEndnote",
	"docEndnotes",
	"docEpigraph",
	"docEpilogue",
	"docErrata",
	"docExample",
	"docFootnote",
	"docForeword",
	"docGlossary",
	"docGlossRef",
	"docIndex",
	"docIntroduction",
	"docNoteRef",
	"docNotice",
	"docPageBreak",
	"docPageFooter",
	"docPageHeader",
	"docPageList",
	"docPart",
	"docPreface",
	"docPrologue",
	"docPullquote",
	"docQna",
	"docSubtitle",
	"docTip",
	"docToc",
	"listGrid",
	"terminal",
}

var rolesByName = func() map[string]Role {
	m := make(map[string]Role, numRoles)
	for i, name := range roleNames {
		m[name] = Role(i)
	}
	return m
}()

func (r Role) String() string {
	if r >= numRoles {
		return "unknown"
	}
	return roleNames[r]
}

func (r Role) MarshalJSON() ([]byte, error) {
	return marshalEnumName(r.String())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	name, err := unmarshalEnumName(data)
	if err != nil {
		return err
	}
	role, ok := rolesByName[name]
	if !ok {
		return errUnknownEnumValue("role", name)
	}
	*r = role
	return nil
}
