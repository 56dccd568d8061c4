package views

import "faith-walk/internal/controllers"

// Bind routes every view event to the controller.
func Bind(view *MainView, controller *controllers.JournalController) {
	view.SetEditHandler(controller.Edit)
	view.SetDeleteHandler(controller.Delete)
	view.SetSubmitHandler(controller.Submit)
	view.SetCancelHandler(controller.Cancel)
	view.SetTabSelectedHandler(controller.TabSelected)
}
