// Package preview projects card form values onto the visual card.
//
// Project is a pure mapping from the five field values and a flipped flag
// to a DisplayModel: the grouped card number, holder name, MM/YY expiry
// and CVC, each with a placeholder when empty. Render, RenderFront and
// RenderBack draw the model with lipgloss for the terminal form and the
// preview command.
package preview
