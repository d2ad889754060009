package behaviour

import (
	"fmt"

	"GopherVR/internal/logger"

	"go.uber.org/zap"
)

// ComponentManager manages all GameObjects and their components
// Similar to Unity's scene management system
type ComponentManager struct {
	gameObjects []*GameObject
}

func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		gameObjects: make([]*GameObject, 0),
	}
}

// RegisterGameObject adds a GameObject to the manager and starts it
func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	cm.gameObjects = append(cm.gameObjects, obj)
	logger.Log.Debug("GameObject registered",
		zap.String("name", obj.Name),
		zap.Stringer("id", obj.ID),
		zap.Strings("components", DescribeComponents(obj)))
	obj.internalStart()
}

// DescribeComponents lists an object's components as "Category/Name".
func DescribeComponents(obj *GameObject) []string {
	names := make([]string, 0, len(obj.Components))
	for _, comp := range obj.Components {
		names = append(names, fmt.Sprintf("%s/%s", GetComponentCategory(comp), GetComponentTypeName(comp)))
	}
	return names
}

// FindGameObject finds a GameObject by name
func (cm *ComponentManager) FindGameObject(name string) *GameObject {
	for _, obj := range cm.gameObjects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// StartAll starts objects that were activated after registration
func (cm *ComponentManager) StartAll() {
	for _, obj := range cm.gameObjects {
		obj.internalStart()
	}
}

// UpdateAll calls Update on all active GameObjects
func (cm *ComponentManager) UpdateAll() {
	for _, obj := range cm.gameObjects {
		obj.internalUpdate()
	}
}

// LateUpdateAll calls LateUpdate on all active GameObjects
func (cm *ComponentManager) LateUpdateAll() {
	for _, obj := range cm.gameObjects {
		obj.internalLateUpdate()
	}
}

// FixedUpdateAll calls FixedUpdate on all active GameObjects
func (cm *ComponentManager) FixedUpdateAll() {
	for _, obj := range cm.gameObjects {
		obj.internalFixedUpdate()
	}
}

// GetAllGameObjects returns all registered GameObjects
func (cm *ComponentManager) GetAllGameObjects() []*GameObject {
	return cm.gameObjects
}

// Clear destroys and removes all GameObjects
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.gameObjects {
		obj.Destroy()
	}
	logger.Log.Debug("Scene cleared", zap.Int("objects", len(cm.gameObjects)))
	cm.gameObjects = cm.gameObjects[:0]
}
