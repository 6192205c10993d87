package components

import "testing"

// TestUIState tests that UIState constants are defined correctly.
func TestUIState(t *testing.T) {
	tests := []struct {
		name  string
		state UIState
		value int
	}{
		{"UINormal should be 0", UINormal, 0},
		{"UIHovered should be 1", UIHovered, 1},
		{"UIClicked should be 2", UIClicked, 2},
		{"UIDisabled should be 3", UIDisabled, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
		})
	}
}

// TestUIComponent tests the UIComponent struct.
func TestUIComponent(t *testing.T) {
	// Test creating a UIComponent with Normal state
	component := UIComponent{State: UINormal}
	if component.State != UINormal {
		t.Errorf("Expected state to be UINormal, got %v", component.State)
	}

	// Test state transitions
	component.State = UIHovered
	if component.State != UIHovered {
		t.Errorf("Expected state to be UIHovered after transition, got %v", component.State)
	}

	component.State = UIClicked
	if component.State != UIClicked {
		t.Errorf("Expected state to be UIClicked after transition, got %v", component.State)
	}

	component.State = UIDisabled
	if component.State != UIDisabled {
		t.Errorf("Expected state to be UIDisabled after transition, got %v", component.State)
	}

	// Test back to normal
	component.State = UINormal
	if component.State != UINormal {
		t.Errorf("Expected state to be UINormal after reset, got %v", component.State)
	}
}

// TestButtonComponent tests the ButtonComponent struct.
func TestButtonComponent(t *testing.T) {
	// Track if callback was invoked
	callbackInvoked := false
	callback := func() {
		callbackInvoked = true
	}

	// Create a button
	button := ButtonComponent{
		Text:      "决定",
		Width:     150,
		Height:    50,
		FillColor: [4]uint8{150, 118, 36, 255},
		TextColor: [4]uint8{250, 244, 224, 255},
		State:     UINormal,
		Enabled:   true,
		OnClick:   callback,
	}

	// Test button properties
	if button.Text != "决定" {
		t.Errorf("Expected Text to be 决定, got %v", button.Text)
	}
	if button.Width != 150 {
		t.Errorf("Expected Width to be 150, got %v", button.Width)
	}
	if button.Height != 50 {
		t.Errorf("Expected Height to be 50, got %v", button.Height)
	}
	if button.State != UINormal {
		t.Errorf("Expected State to be UINormal, got %v", button.State)
	}
	if !button.Enabled {
		t.Error("Expected button to be enabled")
	}

	// Test callback
	if callbackInvoked {
		t.Error("Callback should not be invoked yet")
	}

	// Invoke callback
	button.OnClick()
	if !callbackInvoked {
		t.Error("Callback should be invoked")
	}

	// Test state change
	button.State = UIHovered
	if button.State != UIHovered {
		t.Errorf("Expected State to be UIHovered, got %v", button.State)
	}
}
